package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRoleReferences(t *testing.T) {
	th := Default()
	th.Roles["background"] = Role{Default: "corp-950"}
	th.Roles["accent"] = Role{Default: "donut-500", Foreground: "corp-50"}
	require.NoError(t, th.Validate())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Theme)
		field  string
	}{
		{
			name:   "undefined ramp step",
			mutate: func(th *Theme) { th.Roles["accent"] = Role{Default: "donut-950"} },
			field:  "roles.accent",
		},
		{
			name:   "undefined ramp",
			mutate: func(th *Theme) { th.Roles["ring"] = Role{Default: "mint-500"} },
			field:  "roles.ring",
		},
		{
			name:   "bad foreground",
			mutate: func(th *Theme) { th.Roles["card"] = Role{Default: "#000", Foreground: "corp-75"} },
			field:  "roles.card.foreground",
		},
		{
			name:   "role not a color",
			mutate: func(th *Theme) { th.Roles["border"] = Role{Default: "pinkish"} },
			field:  "roles.border.DEFAULT",
		},
		{
			name:   "empty role",
			mutate: func(th *Theme) { th.Roles["input"] = Role{} },
			field:  "roles.input.DEFAULT",
		},
		{
			name:   "ramp step not a color",
			mutate: func(th *Theme) { th.Ramps["donut"]["500"] = "corp-500" },
			field:  "ramps.donut.500",
		},
		{
			name:   "animation without keyframes",
			mutate: func(th *Theme) { th.Animation["spin"] = "spin 1s linear infinite" },
			field:  "animation.spin",
		},
		{
			name:   "bad radius",
			mutate: func(th *Theme) { th.Radius["lg"] = "twelve" },
			field:  "borderRadius.lg",
		},
		{
			name:   "bad dark mode",
			mutate: func(th *Theme) { th.DarkMode = "auto" },
			field:  "darkMode",
		},
		{
			name:   "no content",
			mutate: func(th *Theme) { th.Content = nil },
			field:  "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Default()
			tt.mutate(th)

			err := th.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, verr.Has(tt.field), "problems: %v", verr.Problems)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	th := Default()
	th.Roles["accent"] = Role{Default: "donut-950"}
	th.Animation["spin"] = "spin 1s linear infinite"

	var verr *ValidationError
	require.True(t, errors.As(th.Validate(), &verr))
	assert.Len(t, verr.Problems, 2)
}

func TestValidateNil(t *testing.T) {
	var th *Theme
	assert.ErrorIs(t, th.Validate(), ErrInvalid)
}
