package kit

import (
	"fmt"

	"github.com/donutdao/donut-ui/pkg/vdom"
)

// ButtonVariant selects one of the predefined button styles.
type ButtonVariant string

const (
	VariantPrimary   ButtonVariant = "primary"
	VariantSecondary ButtonVariant = "secondary"
	VariantGhost     ButtonVariant = "ghost"
	VariantCyber     ButtonVariant = "cyber"
)

// ButtonVariants lists every variant in display order.
var ButtonVariants = []ButtonVariant{VariantPrimary, VariantSecondary, VariantGhost, VariantCyber}

const buttonBase = "relative flex items-center justify-center gap-2 font-medium uppercase tracking-wider transition-all duration-200 active:scale-[0.98] disabled:opacity-50 disabled:cursor-not-allowed outline-none focus:ring-2 focus:ring-donut-500/50 focus:ring-offset-2 focus:ring-offset-corp-950"

var buttonVariants = map[ButtonVariant]string{
	VariantPrimary:   "bg-donut-500 text-white hover:bg-donut-600 shadow-lg shadow-donut-500/25 hover:shadow-donut-500/40 border border-transparent rounded-lg",
	VariantSecondary: "bg-corp-800 border border-corp-700 text-corp-200 hover:border-donut-500/40 hover:text-corp-50 rounded-lg hover:shadow-[0_0_10px_rgba(236,72,153,0.1)]",
	VariantGhost:     "bg-transparent text-corp-400 hover:text-corp-50 hover:bg-corp-800 rounded-lg",
	VariantCyber:     "bg-corp-900 border border-donut-500/50 text-donut-400 hover:bg-donut-500 hover:text-white rounded-lg shadow-[0_0_10px_rgba(236,72,153,0.15)] hover:shadow-[0_0_20px_rgba(236,72,153,0.4)]",
}

const (
	buttonFullWidth = "w-full py-3.5 text-base"
	buttonCompact   = "px-4 py-2 text-sm"
)

// Valid reports whether v is a known variant.
func (v ButtonVariant) Valid() bool {
	_, ok := buttonVariants[v]
	return ok
}

// ParseButtonVariant converts s into a ButtonVariant. The empty string maps
// to the primary variant.
func ParseButtonVariant(s string) (ButtonVariant, error) {
	if s == "" {
		return VariantPrimary, nil
	}
	v := ButtonVariant(s)
	if !v.Valid() {
		return "", fmt.Errorf("kit: unknown button variant %q", s)
	}
	return v, nil
}

// VariantClass returns the style string for v, or "" for an unknown variant.
func VariantClass(v ButtonVariant) string {
	return buttonVariants[v]
}

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant   ButtonVariant
	fullWidth bool
	disabled  bool
	className string
	attrs     []any
	children  []any
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		variant: VariantPrimary,
	}
}

// WithVariant sets the button variant.
func WithVariant(v ButtonVariant) ButtonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

// Primary sets the button to primary variant.
func Primary() ButtonOption { return WithVariant(VariantPrimary) }

// Secondary sets the button to secondary variant.
func Secondary() ButtonOption { return WithVariant(VariantSecondary) }

// Ghost sets the button to ghost variant.
func Ghost() ButtonOption { return WithVariant(VariantGhost) }

// Cyber sets the button to cyber variant.
func Cyber() ButtonOption { return WithVariant(VariantCyber) }

// FullWidth stretches the button across its container.
func FullWidth(full bool) ButtonOption {
	return func(c *buttonConfig) {
		c.fullWidth = full
	}
}

// Disabled sets the disabled attribute.
func Disabled(disabled bool) ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = disabled
	}
}

// ButtonClass adds additional CSS classes after the composed ones.
func ButtonClass(className string) ButtonOption {
	return func(c *buttonConfig) {
		c.className = className
	}
}

// ButtonAttrs forwards attributes and event handlers to the button element.
// Repeated calls accumulate.
func ButtonAttrs(attrs ...any) ButtonOption {
	return func(c *buttonConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// OnClick forwards a click handler to the button element.
func OnClick(handler any) ButtonOption {
	return ButtonAttrs(vdom.OnClick(handler))
}

// ButtonChildren sets the button content.
func ButtonChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) {
		c.children = children
	}
}

// Button renders a styled button element.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	width := buttonCompact
	if cfg.fullWidth {
		width = buttonFullWidth
	}

	passClass, pass := splitClass(cfg.attrs)
	classes := vdom.CN(
		buttonBase,
		buttonVariants[cfg.variant],
		width,
		cfg.className,
		passClass,
	)

	attrs := []any{vdom.Type("button")}
	attrs = append(attrs, pass...)
	if cfg.disabled {
		attrs = append(attrs, vdom.Disabled())
	}
	attrs = append(attrs, vdom.Class(classes))
	attrs = append(attrs, cfg.children...)

	return vdom.Button(attrs...)
}
