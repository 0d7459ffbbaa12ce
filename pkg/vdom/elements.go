package vdom

// IsVoidElement reports whether tag never has children or a closing tag.
func IsVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

// El creates an element with an arbitrary tag name.
//
// Arguments are applied in order. Accepted kinds: Attr and []Attr set props
// (a later value for the same key wins); *VNode, []*VNode, Component and
// string append children; EventHandler sets a handler prop; *Ref is bound
// to the finished element; []any is applied recursively. Nil and empty
// values are skipped so that conditional arguments can be passed inline.
func El(tag string, args ...any) *VNode {
	b := builder{node: &VNode{Kind: KindElement, Tag: tag, Props: make(Props), Children: make([]*VNode, 0)}}
	b.apply(args)
	for _, ref := range b.refs {
		ref.Set(b.node)
	}
	return b.node
}

type builder struct {
	node *VNode
	refs []*Ref
}

func (b *builder) apply(args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			b.attr(v)
		case []Attr:
			for _, a := range v {
				b.attr(a)
			}
		case EventHandler:
			if v.Event != "" {
				b.node.Props[v.Event] = v.Handler
			}
		case *Ref:
			if v != nil {
				b.refs = append(b.refs, v)
			}
		case []any:
			b.apply(v)
		case *VNode:
			b.child(v)
		case []*VNode:
			for _, c := range v {
				b.child(c)
			}
		case string:
			b.child(Text(v))
		case Component:
			b.child(&VNode{Kind: KindComponent, Comp: v})
		}
	}
}

func (b *builder) attr(a Attr) {
	if a.IsEmpty() {
		return
	}
	if s, ok := a.Value.(string); ok && a.Key == "key" {
		b.node.Key = s
	}
	b.node.Props[a.Key] = a.Value
}

func (b *builder) child(n *VNode) {
	if n != nil {
		b.node.Children = append(b.node.Children, n)
	}
}

// Page layout

func Main(args ...any) *VNode    { return El("main", args...) }
func Header(args ...any) *VNode  { return El("header", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }

// Text

func Div(args ...any) *VNode    { return El("div", args...) }
func Span(args ...any) *VNode   { return El("span", args...) }
func P(args ...any) *VNode      { return El("p", args...) }
func H1(args ...any) *VNode     { return El("h1", args...) }
func H2(args ...any) *VNode     { return El("h2", args...) }
func H3(args ...any) *VNode     { return El("h3", args...) }
func A(args ...any) *VNode      { return El("a", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Code(args ...any) *VNode   { return El("code", args...) }
func Ul(args ...any) *VNode     { return El("ul", args...) }
func Li(args ...any) *VNode     { return El("li", args...) }
func Br(args ...any) *VNode     { return El("br", args...) }

// Forms

func Button(args ...any) *VNode { return El("button", args...) }
func Input(args ...any) *VNode  { return El("input", args...) }
func Label(args ...any) *VNode  { return El("label", args...) }

// Media

func Img(args ...any) *VNode { return El("img", args...) }
func Svg(args ...any) *VNode { return El("svg", args...) }
