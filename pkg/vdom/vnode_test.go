package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", Text("hello"), false},
		{"plain element", Div(Class("x")), false},
		{"element with handler", Button(OnClick(func() {})), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeFind(t *testing.T) {
	tree := Div(
		Span(Class("a")),
		Div(Input(ID("field"))),
	)

	found := tree.Find(func(n *VNode) bool { return n.Tag == "input" })
	if found == nil {
		t.Fatal("expected to find input")
	}
	if found.Attr("id") != "field" {
		t.Errorf("id = %q, want field", found.Attr("id"))
	}

	if tree.Find(func(n *VNode) bool { return n.Tag == "table" }) != nil {
		t.Error("expected no match")
	}
}

func TestVNodeTextContent(t *testing.T) {
	tree := Div(
		"Hello, ",
		Strong("World"),
		Func(func() *VNode { return Span("!") }),
	)
	if got := tree.TextContent(); got != "Hello, World!" {
		t.Errorf("TextContent() = %q, want %q", got, "Hello, World!")
	}
}

func TestFuncComponent(t *testing.T) {
	called := false
	comp := Func(func() *VNode {
		called = true
		return Div()
	})

	node := comp.Render()
	if !called {
		t.Error("render function not called")
	}
	if node.Tag != "div" {
		t.Errorf("Tag = %v, want div", node.Tag)
	}
}
