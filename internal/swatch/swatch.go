// Package swatch renders a theme's colors for the terminal.
package swatch

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/donutdao/donut-ui/pkg/theme"
)

// Option configures rendering.
type Option func(*config)

type config struct {
	renderer *lipgloss.Renderer
	width    int
}

// WithRenderer renders through r, which decides the color profile.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithSwatchWidth sets the width of each color block in cells.
func WithSwatchWidth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.width = n
		}
	}
}

func defaultConfig() config {
	return config{
		renderer: lipgloss.NewRenderer(os.Stdout),
		width:    6,
	}
}

// lipgloss understands hex colors only.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	block   func(color string) string
}

func newStyles(cfg config) styles {
	r := cfg.renderer
	blank := strings.Repeat(" ", cfg.width)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ec4899")).MarginTop(1),
		label:   r.NewStyle().Width(14),
		value:   r.NewStyle().Foreground(lipgloss.Color("#d4d4d8")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#71717a")),
		block: func(color string) string {
			if !hexColor.MatchString(color) {
				return r.NewStyle().Width(cfg.width).Render("?")
			}
			return r.NewStyle().Background(lipgloss.Color(color)).Render(blank)
		},
	}
}

// Render draws every ramp step and every role of t.
func Render(t *theme.Theme, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := newStyles(cfg)

	var rows []string
	for _, name := range t.RampNames() {
		ramp := t.Ramps[name]
		rows = append(rows, s.heading.Render(name))
		for _, step := range ramp.Steps() {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				"  ",
				s.label.Render(step),
				s.block(ramp[step]),
				"  ",
				s.value.Render(ramp[step]),
			))
		}
	}

	rows = append(rows, s.heading.Render("roles"))
	for _, name := range t.RoleNames() {
		role := t.Roles[name]
		color := resolve(t, role.Default)
		row := []string{"  ", s.label.Render(name), s.block(color), "  ", s.value.Render(color)}
		if color != role.Default {
			row = append(row, s.muted.Render(" ("+role.Default+")"))
		}
		if role.Foreground != "" {
			fg := resolve(t, role.Foreground)
			row = append(row, s.muted.Render("  foreground "), s.block(fg), "  ", s.value.Render(fg))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// resolve falls back to the raw value so broken references stay visible.
func resolve(t *theme.Theme, value string) string {
	if c, ok := t.Resolve(value); ok {
		return c
	}
	return value
}

// Fprint writes Render(t) followed by a newline.
func Fprint(w io.Writer, t *theme.Theme, opts ...Option) error {
	_, err := fmt.Fprintln(w, Render(t, opts...))
	return err
}
