package swatch

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donutdao/donut-ui/pkg/theme"
)

// A non-terminal writer gives the ASCII profile, so output carries no
// escape sequences.
func plain() Option {
	return WithRenderer(lipgloss.NewRenderer(io.Discard))
}

func lineWith(t *testing.T, out, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return line
		}
	}
	t.Fatalf("no line starting with %q in:\n%s", prefix, out)
	return ""
}

func TestRender(t *testing.T) {
	out := Render(theme.Default(), plain())

	assert.NotContains(t, out, "\x1b[")
	assert.Less(t, strings.Index(out, "donut"), strings.Index(out, "corp"))
	assert.Less(t, strings.Index(out, "corp"), strings.Index(out, "roles"))

	assert.Contains(t, lineWith(t, out, "500"), "#ec4899")
	assert.Contains(t, lineWith(t, out, "950"), "#09090b")

	card := lineWith(t, out, "card")
	assert.Contains(t, card, "#0f0f10")
	assert.Contains(t, card, "foreground")
	assert.Contains(t, card, "#fafafa")

	assert.NotContains(t, lineWith(t, out, "border"), "foreground")
}

func TestRender_ResolvesReferences(t *testing.T) {
	th := theme.Default()
	th.Roles["ring"] = theme.Role{Default: "donut-500"}

	line := lineWith(t, Render(th, plain()), "ring")
	assert.Contains(t, line, "#ec4899")
	assert.Contains(t, line, "(donut-500)")
}

func TestRender_NonHexColor(t *testing.T) {
	th := theme.Default()
	th.Roles["muted"] = theme.Role{Default: "rgb(24 24 27)"}

	line := lineWith(t, Render(th, plain(), WithSwatchWidth(4)), "muted")
	assert.Contains(t, line, "?")
	assert.Contains(t, line, "rgb(24 24 27)")
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, theme.Default(), plain()))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "roles")
}
