package theme

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	jsIdent   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	jsNumber  = regexp.MustCompile(`^(?:0|[1-9][0-9]*)$`)
	upperRune = regexp.MustCompile(`[A-Z]`)
)

// WriteTailwindConfig writes t as a Tailwind v3 CommonJS config. Role
// references are resolved to literal colors.
func WriteTailwindConfig(w io.Writer, t *Theme) error {
	if t == nil {
		return fmt.Errorf("theme: nil theme")
	}

	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")

	b.WriteString("  content: [\n")
	for _, glob := range t.Content {
		fmt.Fprintf(&b, "    %s,\n", jsString(glob))
	}
	b.WriteString("  ],\n")

	if t.DarkMode != "" {
		fmt.Fprintf(&b, "  darkMode: %s,\n", jsString(t.DarkMode))
	}

	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	writeTailwindExtend(&b, t)
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("  plugins: [],\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTailwindExtend(b *strings.Builder, t *Theme) {
	const in = "      "

	if len(t.FontFamily) > 0 {
		b.WriteString(in + "fontFamily: {\n")
		for _, name := range sortedKeys(t.FontFamily, fontOrder...) {
			quoted := make([]string, len(t.FontFamily[name]))
			for i, font := range t.FontFamily[name] {
				quoted[i] = jsString(font)
			}
			fmt.Fprintf(b, "%s  %s: [%s],\n", in, jsKey(name), strings.Join(quoted, ", "))
		}
		b.WriteString(in + "},\n")
	}

	if len(t.Ramps) > 0 || len(t.Roles) > 0 {
		b.WriteString(in + "colors: {\n")
		for _, name := range sortedKeys(t.Ramps, rampOrder...) {
			fmt.Fprintf(b, "%s  %s: {\n", in, jsKey(name))
			ramp := t.Ramps[name]
			for _, step := range sortedKeys(ramp) {
				fmt.Fprintf(b, "%s    %s: %s,\n", in, jsKey(step), jsString(ramp[step]))
			}
			b.WriteString(in + "  },\n")
		}
		for _, name := range sortedKeys(t.Roles, roleOrder...) {
			role := t.Roles[name]
			if role.Foreground == "" {
				fmt.Fprintf(b, "%s  %s: %s,\n", in, jsKey(name), jsString(t.resolved(role.Default)))
				continue
			}
			fmt.Fprintf(b, "%s  %s: {\n", in, jsKey(name))
			fmt.Fprintf(b, "%s    DEFAULT: %s,\n", in, jsString(t.resolved(role.Default)))
			fmt.Fprintf(b, "%s    foreground: %s,\n", in, jsString(t.resolved(role.Foreground)))
			b.WriteString(in + "  },\n")
		}
		b.WriteString(in + "},\n")
	}

	writeJSMap(b, in, "borderRadius", t.Radius)
	writeJSMap(b, in, "animation", t.Animation)

	if len(t.Keyframes) > 0 {
		b.WriteString(in + "keyframes: {\n")
		for _, name := range sortedKeys(t.Keyframes) {
			fmt.Fprintf(b, "%s  %s: {\n", in, jsKey(name))
			kf := t.Keyframes[name]
			for _, stop := range sortedKeys(kf) {
				props := kf[stop]
				pairs := make([]string, 0, len(props))
				for _, prop := range sortedKeys(props) {
					pairs = append(pairs, jsKey(prop)+": "+jsString(props[prop]))
				}
				fmt.Fprintf(b, "%s    %s: { %s },\n", in, jsKey(stop), strings.Join(pairs, ", "))
			}
			b.WriteString(in + "  },\n")
		}
		b.WriteString(in + "},\n")
	}

	writeJSMap(b, in, "boxShadow", t.BoxShadow)
}

func writeJSMap(b *strings.Builder, indent, key string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(b, "%s%s: {\n", indent, key)
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(b, "%s  %s: %s,\n", indent, jsKey(k), jsString(m[k]))
	}
	b.WriteString(indent + "},\n")
}

// WriteThemeCSS writes t as a Tailwind v4 stylesheet: @source lines for the
// content globs, the dark variant when dark mode is class based, and an
// @theme block with every token as a custom property.
func WriteThemeCSS(w io.Writer, t *Theme) error {
	if t == nil {
		return fmt.Errorf("theme: nil theme")
	}

	var b strings.Builder
	for _, glob := range t.Content {
		fmt.Fprintf(&b, "@source %s;\n", cssString(glob))
	}
	switch t.DarkMode {
	case DarkModeClass, DarkModeSelector:
		b.WriteString("@custom-variant dark (&:where(.dark, .dark *));\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	b.WriteString("@theme {\n")

	for _, name := range sortedKeys(t.FontFamily, fontOrder...) {
		fonts := make([]string, len(t.FontFamily[name]))
		for i, font := range t.FontFamily[name] {
			fonts[i] = cssFont(font)
		}
		fmt.Fprintf(&b, "  --font-%s: %s;\n", name, strings.Join(fonts, ", "))
	}

	for _, name := range sortedKeys(t.Ramps, rampOrder...) {
		ramp := t.Ramps[name]
		for _, step := range sortedKeys(ramp) {
			fmt.Fprintf(&b, "  --color-%s-%s: %s;\n", name, step, ramp[step])
		}
	}
	for _, name := range sortedKeys(t.Roles, roleOrder...) {
		role := t.Roles[name]
		fmt.Fprintf(&b, "  --color-%s: %s;\n", name, t.resolved(role.Default))
		if role.Foreground != "" {
			fmt.Fprintf(&b, "  --color-%s-foreground: %s;\n", name, t.resolved(role.Foreground))
		}
	}

	for _, name := range sortedKeys(t.Radius) {
		fmt.Fprintf(&b, "  --radius-%s: %s;\n", name, t.Radius[name])
	}
	for _, name := range sortedKeys(t.Animation) {
		fmt.Fprintf(&b, "  --animate-%s: %s;\n", name, t.Animation[name])
	}
	for _, name := range sortedKeys(t.BoxShadow) {
		fmt.Fprintf(&b, "  --shadow-%s: %s;\n", name, t.BoxShadow[name])
	}

	for _, name := range sortedKeys(t.Keyframes) {
		fmt.Fprintf(&b, "\n  @keyframes %s {\n", name)
		kf := t.Keyframes[name]
		for _, stop := range sortedKeys(kf) {
			fmt.Fprintf(&b, "    %s {\n", stop)
			props := kf[stop]
			for _, prop := range sortedKeys(props) {
				fmt.Fprintf(&b, "      %s: %s;\n", kebab(prop), props[prop])
			}
			b.WriteString("    }\n")
		}
		b.WriteString("  }\n")
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// resolved follows ramp references, leaving unresolvable values as written.
func (t *Theme) resolved(value string) string {
	if c, ok := t.Resolve(value); ok {
		return c
	}
	return value
}

func jsKey(k string) string {
	if jsIdent.MatchString(k) || jsNumber.MatchString(k) {
		return k
	}
	return jsString(k)
}

func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}

func cssString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// cssFont quotes family names that contain whitespace.
func cssFont(name string) string {
	if strings.ContainsAny(name, " \t") {
		return cssString(name)
	}
	return name
}

// kebab converts a camelCase property name to its CSS form.
func kebab(prop string) string {
	return upperRune.ReplaceAllStringFunc(prop, func(r string) string {
		return "-" + strings.ToLower(r)
	})
}
