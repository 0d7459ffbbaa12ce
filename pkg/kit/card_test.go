package kit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donutdao/donut-ui/pkg/render"
	"github.com/donutdao/donut-ui/pkg/vdom"
)

func findSlot(node *vdom.VNode, name string) *vdom.VNode {
	return node.Find(func(n *vdom.VNode) bool { return n.Attr("data-slot") == name })
}

func TestCardHeaderPresence(t *testing.T) {
	tests := []struct {
		name   string
		opts   []CardOption
		header bool
	}{
		{"empty", nil, false},
		{"icon only", []CardOption{CardIcon(vdom.Span("*"))}, false},
		{"title", []CardOption{CardTitle("Stats")}, true},
		{"empty title", []CardOption{CardTitle("")}, false},
		{"right header", []CardOption{CardRightHeader(vdom.Span("1h"))}, true},
		{"empty right header", []CardOption{CardRightHeader("")}, false},
		{"all", []CardOption{CardTitle("Stats"), CardIcon("*"), CardRightHeader("1h")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := findSlot(Card(tt.opts...), "header")
			assert.Equal(t, tt.header, header != nil)
		})
	}
}

func TestCardPadding(t *testing.T) {
	tests := []struct {
		size      Size
		noPadding bool
		want      string
	}{
		{SizeSm, false, "flex-1 flex flex-col min-h-0 p-3"},
		{SizeDefault, false, "flex-1 flex flex-col min-h-0 p-4"},
		{SizeLg, false, "flex-1 flex flex-col min-h-0 p-5"},
		{SizeSm, true, "flex-1 flex flex-col min-h-0"},
		{SizeDefault, true, "flex-1 flex flex-col min-h-0"},
		{SizeLg, true, "flex-1 flex flex-col min-h-0"},
	}

	for _, tt := range tests {
		content := findSlot(Card(CardSize(tt.size), NoPadding(tt.noPadding)), "content")
		require.NotNil(t, content)
		assert.Equal(t, tt.want, content.Attr("class"), "size=%s noPadding=%v", tt.size, tt.noPadding)
	}

	content := findSlot(Card(), "content")
	assert.Equal(t, "flex-1 flex flex-col min-h-0 p-4", content.Attr("class"))
}

func TestCardStatsScenario(t *testing.T) {
	node := Card(CardTitle("Stats"), CardChildren(vdom.Div(vdom.ID("child"))))

	header := findSlot(node, "header")
	require.NotNil(t, header)
	assert.Equal(t, "Stats", header.TextContent())

	content := findSlot(node, "content")
	require.NotNil(t, content)
	require.Len(t, content.Children, 1)
	assert.Equal(t, "child", content.Children[0].Attr("id"))

	html, err := render.HTML(node)
	require.NoError(t, err)
	assert.Contains(t, html, `<span class="text-sm font-medium text-corp-300" data-slot="title">Stats</span>`)
}

func TestCardHeaderOrder(t *testing.T) {
	node := Card(CardTitle("T"), CardIcon("I"), CardRightHeader("R"))
	header := findSlot(node, "header")
	require.NotNil(t, header)
	assert.Equal(t, "ITR", header.TextContent())

	iconSpan := findSlot(header, "icon")
	require.NotNil(t, iconSpan)
	assert.Equal(t, "text-donut-400", iconSpan.Attr("class"))
	assert.NotNil(t, findSlot(header, "right-header"))
}

func TestCardClasses(t *testing.T) {
	node := Card(CardClass("h-full"), CardAttrs(vdom.ID("c"), vdom.Class("extra")))
	assert.Equal(t, "relative flex flex-col overflow-hidden bg-[#131313] rounded-xl h-full extra", node.Attr("class"))
	assert.Equal(t, "c", node.Attr("id"))
}

func TestParseSize(t *testing.T) {
	got, err := ParseSize("")
	require.NoError(t, err)
	assert.Equal(t, SizeDefault, got)

	got, err = ParseSize("lg")
	require.NoError(t, err)
	assert.Equal(t, SizeLg, got)

	_, err = ParseSize("xl")
	assert.Error(t, err)
}
