package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Div(Class("card"), ID("main"))
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
	})

	t.Run("later attribute wins", func(t *testing.T) {
		node := Button(Type("button"), Type("submit"))
		if node.Props["type"] != "submit" {
			t.Errorf("type = %v, want submit", node.Props["type"])
		}
	})

	t.Run("with string shorthand", func(t *testing.T) {
		node := Div("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText || node.Children[0].Text != "Hello" {
			t.Errorf("child = %+v, want text Hello", node.Children[0])
		}
	})

	t.Run("with nil ignored", func(t *testing.T) {
		var missing *VNode
		node := Div(nil, Class("test"), missing, Attr{})
		if node.Props["class"] != "test" {
			t.Errorf("class = %v, want test", node.Props["class"])
		}
		if len(node.Children) != 0 {
			t.Errorf("Children len = %v, want 0", len(node.Children))
		}
	})

	t.Run("with event handler", func(t *testing.T) {
		handler := func() {}
		node := Button(OnClick(handler))
		if node.Props["onclick"] == nil {
			t.Error("onclick handler not set")
		}
	})

	t.Run("with nested arg slice", func(t *testing.T) {
		bag := []any{Name("q"), []any{Placeholder("Search"), OnInput(func(string) {})}}
		node := Input(bag)
		if node.Props["name"] != "q" || node.Props["placeholder"] != "Search" {
			t.Errorf("props = %v", node.Props)
		}
		if node.Props["oninput"] == nil {
			t.Error("oninput handler not set")
		}
	})

	t.Run("with key", func(t *testing.T) {
		node := Li(Key(7))
		if node.Key != "7" {
			t.Errorf("Key = %q, want 7", node.Key)
		}
	})

	t.Run("with component child", func(t *testing.T) {
		node := Div(Func(func() *VNode { return Span() }))
		if len(node.Children) != 1 || node.Children[0].Kind != KindComponent {
			t.Fatalf("expected one component child, got %+v", node.Children)
		}
	})
}

func TestCreateElementBindsRef(t *testing.T) {
	ref := NewRef()
	node := Input(Type("text"), ref)

	if !ref.IsSet() {
		t.Fatal("ref should be set after element creation")
	}
	if ref.Current() != node {
		t.Error("ref should point at the created element")
	}
	if _, ok := node.Props["ref"]; ok {
		t.Error("ref must not leak into props")
	}
}

func TestEl(t *testing.T) {
	node := El("circle", CustomAttr("r", "8"))
	if node.Tag != "circle" {
		t.Errorf("Tag = %v, want circle", node.Tag)
	}
	if node.Props["r"] != "8" {
		t.Errorf("r = %v, want 8", node.Props["r"])
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"input", "br", "img", "meta"} {
		if !IsVoidElement(tag) {
			t.Errorf("%s should be void", tag)
		}
	}
	for _, tag := range []string{"div", "button", "svg"} {
		if IsVoidElement(tag) {
			t.Errorf("%s should not be void", tag)
		}
	}
}
