package vdom

import "fmt"

// Text creates an escaped text node.
func Text(content string) *VNode { return &VNode{Kind: KindText, Text: content} }

// Raw creates a node whose content is written without escaping. Only pass
// trusted markup, such as icon paths built into the binary.
func Raw(html string) *VNode { return &VNode{Kind: KindRaw, Text: html} }

// Fragment groups children without a wrapper element. Children are
// converted with Node; those that convert to nil are dropped.
func Fragment(children ...any) *VNode {
	f := &VNode{Kind: KindFragment, Children: make([]*VNode, 0, len(children))}
	for _, c := range children {
		if n := Node(c); n != nil {
			f.Children = append(f.Children, n)
		}
	}
	return f
}

// Node converts slot content into a single node. It accepts *VNode,
// []*VNode, string, Component and []any. Anything else, and empty values,
// give nil.
func Node(content any) *VNode {
	switch v := content.(type) {
	case *VNode:
		return v
	case string:
		if v != "" {
			return Text(v)
		}
	case Component:
		return &VNode{Kind: KindComponent, Comp: v}
	case []any:
		if len(v) > 0 {
			return Fragment(v...)
		}
	case []*VNode:
		if len(v) > 0 {
			items := make([]any, len(v))
			for i, n := range v {
				items[i] = n
			}
			return Fragment(items...)
		}
	}
	return nil
}

// If returns node when condition holds and nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if !condition {
		return nil
	}
	return node
}

// Key sets the node key. Keys are not rendered.
func Key(key any) Attr { return attr("key", fmt.Sprint(key)) }
