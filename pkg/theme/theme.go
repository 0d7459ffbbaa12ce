// Package theme defines the donut-ui design tokens and exports them for
// Tailwind CSS.
//
// A Theme is plain data: font stacks, the donut and corp color ramps,
// semantic role colors, the radius scale, animations with their keyframes,
// and shadow presets, plus the content globs and dark mode strategy that
// Tailwind needs at build time.
//
// Default returns the built-in table. LoadFile overlays a JSON, YAML or TOML
// file on top of it and validates the result. WriteTailwindConfig and
// WriteThemeCSS render a theme as a v3 tailwind.config.js or a v4 @theme
// stylesheet.
package theme

// Ramp maps a shade step ("50" .. "950") to a color.
type Ramp map[string]string

// Keyframes maps a stop ("0%", "100%") to the CSS properties set at that
// stop. Property names use the camelCase form Tailwind config files use.
type Keyframes map[string]map[string]string

// Role is a semantic color. Default may be a literal color or a reference to
// a ramp step such as "corp-950". Foreground is optional.
type Role struct {
	Default    string `json:"DEFAULT" yaml:"DEFAULT" toml:"DEFAULT" validate:"required,color_or_ref"`
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground,omitempty" validate:"omitempty,color_or_ref"`
}

// Theme is the complete design token table.
type Theme struct {
	Content    []string             `json:"content" yaml:"content" toml:"content" validate:"required,min=1,dive,required"`
	DarkMode   string               `json:"darkMode" yaml:"darkMode" toml:"darkMode" validate:"dark_mode"`
	FontFamily map[string][]string  `json:"fontFamily" yaml:"fontFamily" toml:"fontFamily" validate:"dive,keys,token_name,endkeys,min=1"`
	Ramps      map[string]Ramp      `json:"ramps" yaml:"ramps" toml:"ramps" validate:"required,dive,keys,token_name,endkeys,required"`
	Roles      map[string]Role      `json:"roles" yaml:"roles" toml:"roles" validate:"required,dive,keys,token_name,endkeys"`
	Radius     map[string]string    `json:"borderRadius" yaml:"borderRadius" toml:"borderRadius" validate:"dive,keys,token_name,endkeys,css_length"`
	Animation  map[string]string    `json:"animation" yaml:"animation" toml:"animation" validate:"dive,keys,token_name,endkeys,required"`
	Keyframes  map[string]Keyframes `json:"keyframes" yaml:"keyframes" toml:"keyframes" validate:"dive,keys,token_name,endkeys,required"`
	BoxShadow  map[string]string    `json:"boxShadow" yaml:"boxShadow" toml:"boxShadow" validate:"dive,keys,token_name,endkeys,required"`
}

// Dark mode strategies understood by Tailwind.
const (
	DarkModeClass    = "class"
	DarkModeSelector = "selector"
	DarkModeMedia    = "media"
)

// Display order for well-known keys. Unknown keys follow in sorted order.
var (
	fontOrder = []string{"sans", "serif", "mono"}
	rampOrder = []string{"donut", "corp"}
	roleOrder = []string{
		"background", "foreground", "card", "muted", "accent",
		"border", "input", "ring", "destructive", "success",
	}
)

var defaultTheme = Theme{
	Content: []string{
		"./app/**/*.{js,ts,jsx,tsx,mdx}",
		"./components/**/*.{js,ts,jsx,tsx,mdx}",
		"./features/**/*.{js,ts,jsx,tsx,mdx}",
		"./lib/**/*.{js,ts,jsx,tsx,mdx}",
		"./*.tsx",
	},
	DarkMode: DarkModeClass,
	FontFamily: map[string][]string{
		"sans": {"Inter", "system-ui", "sans-serif"},
		"mono": {"JetBrains Mono", "monospace"},
	},
	Ramps: map[string]Ramp{
		"donut": {
			"50":  "#fdf2f8",
			"100": "#fce7f3",
			"200": "#fbcfe8",
			"300": "#f9a8d4",
			"400": "#f472b6",
			"500": "#ec4899",
			"600": "#db2777",
			"700": "#be185d",
			"800": "#9d174d",
			"900": "#831843",
		},
		"corp": {
			"50":  "#fafafa",
			"100": "#f4f4f5",
			"200": "#e4e4e7",
			"300": "#d4d4d8",
			"400": "#a1a1aa",
			"500": "#71717a",
			"600": "#52525b",
			"700": "#3f3f46",
			"800": "#27272a",
			"900": "#18181b",
			"950": "#09090b",
		},
	},
	Roles: map[string]Role{
		"background":  {Default: "#09090b"},
		"foreground":  {Default: "#fafafa"},
		"card":        {Default: "#0f0f10", Foreground: "#fafafa"},
		"muted":       {Default: "#18181b", Foreground: "#a1a1aa"},
		"accent":      {Default: "#ec4899", Foreground: "#ffffff"},
		"border":      {Default: "#27272a"},
		"input":       {Default: "#27272a"},
		"ring":        {Default: "#ec4899"},
		"destructive": {Default: "#ef4444", Foreground: "#fafafa"},
		"success":     {Default: "#22c55e", Foreground: "#fafafa"},
	},
	Radius: map[string]string{
		"sm":  "6px",
		"md":  "8px",
		"lg":  "12px",
		"xl":  "16px",
		"2xl": "20px",
		"3xl": "24px",
	},
	Animation: map[string]string{
		"fade-in":  "fadeIn 0.3s ease-out",
		"slide-up": "slideUp 0.3s ease-out",
		"glow":     "glow 2s ease-in-out infinite alternate",
	},
	Keyframes: map[string]Keyframes{
		"fadeIn": {
			"0%":   {"opacity": "0"},
			"100%": {"opacity": "1"},
		},
		"slideUp": {
			"0%":   {"opacity": "0", "transform": "translateY(10px)"},
			"100%": {"opacity": "1", "transform": "translateY(0)"},
		},
		"glow": {
			"0%":   {"boxShadow": "0 0 20px rgba(236, 72, 153, 0.3)"},
			"100%": {"boxShadow": "0 0 30px rgba(236, 72, 153, 0.5)"},
		},
	},
	BoxShadow: map[string]string{
		"glow":    "0 0 20px rgba(236, 72, 153, 0.3)",
		"glow-lg": "0 0 40px rgba(236, 72, 153, 0.4)",
	},
}

// Default returns a copy of the built-in donut-ui theme. Callers may modify
// the result freely.
func Default() *Theme {
	return defaultTheme.Clone()
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	if t == nil {
		return nil
	}
	c := &Theme{
		Content:    append([]string(nil), t.Content...),
		DarkMode:   t.DarkMode,
		FontFamily: make(map[string][]string, len(t.FontFamily)),
		Ramps:      make(map[string]Ramp, len(t.Ramps)),
		Roles:      make(map[string]Role, len(t.Roles)),
		Radius:     copyStrings(t.Radius),
		Animation:  copyStrings(t.Animation),
		Keyframes:  make(map[string]Keyframes, len(t.Keyframes)),
		BoxShadow:  copyStrings(t.BoxShadow),
	}
	for name, stack := range t.FontFamily {
		c.FontFamily[name] = append([]string(nil), stack...)
	}
	for name, ramp := range t.Ramps {
		c.Ramps[name] = Ramp(copyStrings(ramp))
	}
	for name, role := range t.Roles {
		c.Roles[name] = role
	}
	for name, kf := range t.Keyframes {
		c.Keyframes[name] = kf.clone()
	}
	return c
}

func (k Keyframes) clone() Keyframes {
	c := make(Keyframes, len(k))
	for stop, props := range k {
		c[stop] = copyStrings(props)
	}
	return c
}

// Merge overlays the tokens set in o onto t. Ramps and maps merge per key,
// roles per field, and a keyframes definition replaces the existing one as
// a whole. Content is replaced when o has any.
func (t *Theme) Merge(o *Theme) {
	if o == nil {
		return
	}
	if len(o.Content) > 0 {
		t.Content = append([]string(nil), o.Content...)
	}
	if o.DarkMode != "" {
		t.DarkMode = o.DarkMode
	}
	for name, stack := range o.FontFamily {
		if t.FontFamily == nil {
			t.FontFamily = make(map[string][]string)
		}
		t.FontFamily[name] = append([]string(nil), stack...)
	}
	for name, ramp := range o.Ramps {
		if t.Ramps == nil {
			t.Ramps = make(map[string]Ramp)
		}
		dst := t.Ramps[name]
		if dst == nil {
			dst = make(Ramp, len(ramp))
			t.Ramps[name] = dst
		}
		for step, value := range ramp {
			dst[step] = value
		}
	}
	for name, role := range o.Roles {
		if t.Roles == nil {
			t.Roles = make(map[string]Role)
		}
		dst := t.Roles[name]
		if role.Default != "" {
			dst.Default = role.Default
		}
		if role.Foreground != "" {
			dst.Foreground = role.Foreground
		}
		t.Roles[name] = dst
	}
	t.Radius = mergeStrings(t.Radius, o.Radius)
	t.Animation = mergeStrings(t.Animation, o.Animation)
	t.BoxShadow = mergeStrings(t.BoxShadow, o.BoxShadow)
	for name, kf := range o.Keyframes {
		if t.Keyframes == nil {
			t.Keyframes = make(map[string]Keyframes)
		}
		t.Keyframes[name] = kf.clone()
	}
}

func copyStrings(m map[string]string) map[string]string {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func mergeStrings(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
