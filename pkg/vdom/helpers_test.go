package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Glazed")
	if node.Kind != KindText || node.Text != "Glazed" {
		t.Errorf("Text() = %+v", node)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
}

func TestFragment(t *testing.T) {
	var missing *VNode
	node := Fragment(Div(), "text", nil, missing, []*VNode{Span(), nil})
	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Errorf("Children len = %v, want 3", len(node.Children))
	}
}

func TestNode(t *testing.T) {
	tests := []struct {
		name    string
		content any
		want    VKind
		isNil   bool
	}{
		{"nil", nil, 0, true},
		{"empty string", "", 0, true},
		{"empty slice", []*VNode{}, 0, true},
		{"unsupported", 42, 0, true},
		{"string", "x", KindText, false},
		{"node", Div(), KindElement, false},
		{"nodes", []*VNode{Div(), Span()}, KindFragment, false},
		{"args", []any{"a", Div()}, KindFragment, false},
		{"component", Func(func() *VNode { return nil }), KindComponent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Node(tt.content)
			if tt.isNil {
				if got != nil {
					t.Errorf("Node() = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.Kind != tt.want {
				t.Errorf("Node() = %+v, want kind %v", got, tt.want)
			}
		})
	}
}

func TestIf(t *testing.T) {
	if If(false, Div()) != nil {
		t.Error("If(false) should be nil")
	}
	if If(true, Div()) == nil {
		t.Error("If(true) should return node")
	}
}
