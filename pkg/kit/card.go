package kit

import (
	"fmt"

	"github.com/donutdao/donut-ui/pkg/vdom"
)

// Size selects the card content padding.
type Size string

const (
	SizeSm      Size = "sm"
	SizeDefault Size = "default"
	SizeLg      Size = "lg"
)

// Sizes lists every size in display order.
var Sizes = []Size{SizeSm, SizeDefault, SizeLg}

var cardPadding = map[Size]string{
	SizeSm:      "p-3",
	SizeDefault: "p-4",
	SizeLg:      "p-5",
}

// Valid reports whether s is a known size.
func (s Size) Valid() bool {
	_, ok := cardPadding[s]
	return ok
}

// ParseSize converts s into a Size. The empty string maps to SizeDefault.
func ParseSize(s string) (Size, error) {
	if s == "" {
		return SizeDefault, nil
	}
	size := Size(s)
	if !size.Valid() {
		return "", fmt.Errorf("kit: unknown card size %q", s)
	}
	return size, nil
}

// CardOption configures a Card component.
type CardOption func(*cardConfig)

type cardConfig struct {
	title       string
	icon        any
	rightHeader any
	noPadding   bool
	size        Size
	className   string
	attrs       []any
	children    []any
}

// CardTitle sets the header title.
func CardTitle(title string) CardOption {
	return func(c *cardConfig) {
		c.title = title
	}
}

// CardIcon sets the icon shown before the title. An icon alone does not
// produce a header.
func CardIcon(icon any) CardOption {
	return func(c *cardConfig) {
		c.icon = icon
	}
}

// CardRightHeader sets content aligned to the right of the header.
func CardRightHeader(content any) CardOption {
	return func(c *cardConfig) {
		c.rightHeader = content
	}
}

// NoPadding removes the content padding regardless of size.
func NoPadding(noPadding bool) CardOption {
	return func(c *cardConfig) {
		c.noPadding = noPadding
	}
}

// CardSize sets the content padding size.
func CardSize(size Size) CardOption {
	return func(c *cardConfig) {
		c.size = size
	}
}

// CardClass adds additional CSS classes to the container.
func CardClass(className string) CardOption {
	return func(c *cardConfig) {
		c.className = className
	}
}

// CardAttrs forwards attributes to the container element.
func CardAttrs(attrs ...any) CardOption {
	return func(c *cardConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// CardChildren sets the card content.
func CardChildren(children ...any) CardOption {
	return func(c *cardConfig) {
		c.children = children
	}
}

// padding returns the content padding class.
func (c cardConfig) padding() string {
	if c.noPadding {
		return ""
	}
	return cardPadding[c.size]
}

// Card renders a container with an optional header row.
func Card(opts ...CardOption) *vdom.VNode {
	cfg := cardConfig{size: SizeDefault}
	for _, opt := range opts {
		opt(&cfg)
	}

	passClass, pass := splitClass(cfg.attrs)

	attrs := append([]any{}, pass...)
	attrs = append(attrs, vdom.Class(vdom.CN(
		"relative flex flex-col overflow-hidden bg-[#131313] rounded-xl",
		cfg.className,
		passClass,
	)))

	if cfg.title != "" || slot(cfg.rightHeader) {
		attrs = append(attrs, cardHeader(cfg))
	}

	content := []any{
		vdom.Data("slot", "content"),
		vdom.Class(vdom.CN("flex-1 flex flex-col min-h-0", cfg.padding())),
	}
	content = append(content, cfg.children...)
	attrs = append(attrs, vdom.Div(content...))

	return vdom.Div(attrs...)
}

func cardHeader(cfg cardConfig) *vdom.VNode {
	var lead []any
	lead = append(lead, vdom.Class("flex items-center gap-2"))
	if icon := vdom.Node(cfg.icon); icon != nil {
		lead = append(lead, vdom.Span(vdom.Data("slot", "icon"), vdom.Class("text-donut-400"), icon))
	}
	if cfg.title != "" {
		lead = append(lead, vdom.Span(vdom.Data("slot", "title"), vdom.Class("text-sm font-medium text-corp-300"), vdom.Text(cfg.title)))
	}

	return vdom.Div(
		vdom.Data("slot", "header"),
		vdom.Class("flex items-center justify-between px-4 py-2.5 border-b border-white/5"),
		vdom.Div(lead...),
		vdom.If(slot(cfg.rightHeader), vdom.Div(vdom.Data("slot", "right-header"), vdom.Node(cfg.rightHeader))),
	)
}
