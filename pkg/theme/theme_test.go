package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTokens(t *testing.T) {
	th := Default()

	assert.Equal(t, DarkModeClass, th.DarkMode)
	assert.Len(t, th.Content, 5)
	assert.Equal(t, []string{"Inter", "system-ui", "sans-serif"}, th.FontFamily["sans"])
	assert.Equal(t, []string{"JetBrains Mono", "monospace"}, th.FontFamily["mono"])

	assert.Len(t, th.Ramps["donut"], 10)
	assert.Len(t, th.Ramps["corp"], 11)
	assert.Equal(t, "#ec4899", th.Ramps["donut"]["500"])
	assert.Equal(t, "#09090b", th.Ramps["corp"]["950"])

	assert.Equal(t, Role{Default: "#0f0f10", Foreground: "#fafafa"}, th.Roles["card"])
	assert.Equal(t, Role{Default: "#ec4899"}, th.Roles["ring"])
	assert.Len(t, th.Roles, 10)

	assert.Equal(t, "20px", th.Radius["2xl"])
	assert.Equal(t, "glow 2s ease-in-out infinite alternate", th.Animation["glow"])
	assert.Equal(t, "translateY(10px)", th.Keyframes["slideUp"]["0%"]["transform"])
	assert.Equal(t, "0 0 40px rgba(236, 72, 153, 0.4)", th.BoxShadow["glow-lg"])
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Ramps["donut"]["500"] = "#000000"
	a.FontFamily["sans"][0] = "Comic Sans"
	a.Keyframes["glow"]["0%"]["boxShadow"] = "none"
	a.Roles["card"] = Role{Default: "#111111"}

	b := Default()
	assert.Equal(t, "#ec4899", b.Ramps["donut"]["500"])
	assert.Equal(t, "Inter", b.FontFamily["sans"][0])
	assert.Equal(t, "0 0 20px rgba(236, 72, 153, 0.3)", b.Keyframes["glow"]["0%"]["boxShadow"])
	assert.Equal(t, "#fafafa", b.Roles["card"].Foreground)
}

func TestMerge(t *testing.T) {
	th := Default()
	th.Merge(&Theme{
		DarkMode: DarkModeMedia,
		Ramps:    map[string]Ramp{"donut": {"500": "#ff00aa"}, "mint": {"500": "#3eb489"}},
		Roles:    map[string]Role{"card": {Foreground: "#ffffff"}},
		Radius:   map[string]string{"4xl": "32px"},
	})

	assert.Equal(t, DarkModeMedia, th.DarkMode)
	assert.Equal(t, "#ff00aa", th.Ramps["donut"]["500"])
	assert.Equal(t, "#fdf2f8", th.Ramps["donut"]["50"])
	assert.Equal(t, "#3eb489", th.Ramps["mint"]["500"])
	assert.Equal(t, Role{Default: "#0f0f10", Foreground: "#ffffff"}, th.Roles["card"])
	assert.Equal(t, "32px", th.Radius["4xl"])
	assert.Equal(t, "6px", th.Radius["sm"])
	assert.Len(t, th.Content, 5)
}

func TestSortedKeys(t *testing.T) {
	ramp := Default().Ramps["corp"]
	assert.Equal(t,
		[]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"},
		sortedKeys(ramp))

	assert.Equal(t,
		[]string{"sm", "md", "lg", "xl", "2xl", "3xl"},
		sortedKeys(Default().Radius))

	assert.Equal(t,
		[]string{"donut", "corp", "mint"},
		sortedKeys(map[string]int{"mint": 0, "corp": 0, "donut": 0}, rampOrder...))

	assert.Equal(t,
		[]string{"from", "50%", "to"},
		sortedKeys(map[string]int{"to": 0, "from": 0, "50%": 0}))
}

func TestDisplayOrder(t *testing.T) {
	th := Default()
	assert.Equal(t, []string{"donut", "corp"}, th.RampNames())
	assert.Equal(t, "50", th.Ramps["donut"].Steps()[0])
	assert.Equal(t, "900", th.Ramps["donut"].Steps()[9])
	assert.Equal(t, roleOrder, th.RoleNames())
}

func TestResolve(t *testing.T) {
	th := Default()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#ec4899", "#ec4899", true},
		{"rgb(1, 2, 3)", "rgb(1, 2, 3)", true},
		{"corp-950", "#09090b", true},
		{"donut-500", "#ec4899", true},
		{"donut-950", "", false},
		{"mint-500", "", false},
		{"pink", "", false},
	}

	for _, tt := range tests {
		got, ok := th.Resolve(tt.in)
		require.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
