package vdom

import "strings"

// VKind tells what a VNode holds.
type VKind uint8

const (
	KindElement   VKind = iota // Tag, Props and Children
	KindText                   // Text, escaped when rendered
	KindFragment               // Children without a wrapper
	KindComponent              // Comp, rendered in place
	KindRaw                    // Text, written as-is
)

var kindNames = [...]string{"Element", "Text", "Fragment", "Component", "Raw"}

func (k VKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// VNode is one node of a component tree. Which fields are used depends on
// Kind.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string
	Text     string
	Comp     Component
}

// Props holds attributes and, under "on*" keys, event handlers.
type Props map[string]any

// IsInteractive reports whether the element carries any event handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr returns the string value of an attribute, or "" when it is unset or
// not a string.
func (v *VNode) Attr(key string) string {
	if v == nil {
		return ""
	}
	s, _ := v.Props[key].(string)
	return s
}

// Find returns the first node, in depth-first order, that match accepts.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if match(v) {
		return v
	}
	for _, c := range v.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the text of every descendant, rendering
// components on the way.
func (v *VNode) TextContent() string {
	var b strings.Builder
	var walk func(*VNode)
	walk = func(n *VNode) {
		switch {
		case n == nil:
		case n.Kind == KindText:
			b.WriteString(n.Text)
		case n.Kind == KindComponent:
			if n.Comp != nil {
				walk(n.Comp.Render())
			}
		default:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(v)
	return b.String()
}

// Attr is one attribute passed to an element factory. The zero Attr is
// skipped.
type Attr struct {
	Key   string
	Value any
}

func (a Attr) IsEmpty() bool { return a.Key == "" }

// EventHandler is a handler passed to an element factory. Event is the prop
// key, e.g. "onclick".
type EventHandler struct {
	Event   string
	Handler any
}

// Component is anything that renders to a VNode.
type Component interface {
	Render() *VNode
}

type funcComponent func() *VNode

func (f funcComponent) Render() *VNode { return f() }

// Func turns a render function into a Component.
func Func(render func() *VNode) Component { return funcComponent(render) }
