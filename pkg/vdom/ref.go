package vdom

import "sync"

// Ref is a caller-owned handle to a rendered element.
//
// Passing a *Ref to an element factory binds it to the element being built:
// the factory writes the node into the ref and keeps no pointer to the ref
// itself. The caller reads it back after render, for example to inspect the
// element or to target it from a client-side hook by ID.
//
// Ref is safe for concurrent access.
type Ref struct {
	node  *VNode
	isSet bool
	mu    sync.RWMutex
}

// NewRef creates an empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the bound node, or nil before the ref is attached.
func (r *Ref) Current() *VNode {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.node
}

// Set binds the ref to node.
func (r *Ref) Set(node *VNode) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.node = node
	r.isSet = true
}

// IsSet returns true once the ref has been attached to an element.
func (r *Ref) IsSet() bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isSet
}

// Clear detaches the ref.
func (r *Ref) Clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.node = nil
	r.isSet = false
}
