package kit

import (
	"github.com/donutdao/donut-ui/pkg/icon"
	"github.com/donutdao/donut-ui/pkg/vdom"
)

// SearchIconSize is the glyph size used by SearchInput.
const SearchIconSize = 18

const inputBase = "w-full bg-[#232323] rounded-xl px-4 py-3 text-sm text-corp-50 placeholder:text-corp-500 focus:outline-none focus:ring-2 focus:ring-donut-500/50 transition-all"

// InputOption configures an Input component.
type InputOption func(*inputConfig)

type inputConfig struct {
	icon      any
	className string
	attrs     []any
	ref       *vdom.Ref
}

// InputIcon sets the leading icon.
func InputIcon(icon any) InputOption {
	return func(c *inputConfig) {
		c.icon = icon
	}
}

// InputClass adds additional CSS classes to the field.
func InputClass(className string) InputOption {
	return func(c *inputConfig) {
		c.className = className
	}
}

// InputAttrs forwards attributes and event handlers to the input element.
// Repeated calls accumulate.
func InputAttrs(attrs ...any) InputOption {
	return func(c *inputConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// InputRef binds ref to the rendered input element. The ref stays owned by
// the caller.
func InputRef(ref *vdom.Ref) InputOption {
	return func(c *inputConfig) {
		c.ref = ref
	}
}

// Input renders a text field with an optional leading icon.
func Input(opts ...InputOption) *vdom.VNode {
	cfg := inputConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	iconNode := vdom.Node(cfg.icon)
	passClass, pass := splitClass(cfg.attrs)

	inset := ""
	if iconNode != nil {
		inset = "pl-10"
	}

	field := append([]any{}, pass...)
	field = append(field, vdom.Class(vdom.CN(inputBase, inset, cfg.className, passClass)))
	if cfg.ref != nil {
		field = append(field, cfg.ref)
	}

	return vdom.Div(
		vdom.Class("relative"),
		vdom.If(iconNode != nil, vdom.Div(
			vdom.Data("slot", "icon"),
			vdom.Class("absolute left-3 top-1/2 -translate-y-1/2 text-corp-500"),
			iconNode,
		)),
		vdom.Input(field...),
	)
}

// SearchInput renders an Input with the search glyph. A caller supplied
// icon is ignored; every other option is forwarded.
func SearchInput(opts ...InputOption) *vdom.VNode {
	return Input(append(opts[:len(opts):len(opts)], InputIcon(icon.Search(SearchIconSize)))...)
}
