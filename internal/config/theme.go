package config

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/donutdao/donut-ui/internal/errors"
	"github.com/donutdao/donut-ui/pkg/theme"
)

// LoadTheme loads the configured theme file, or the built-in theme when
// none is set.
func (c *Config) LoadTheme() (*theme.Theme, error) {
	path := c.ThemePath()
	if path == "" {
		return theme.Default(), nil
	}
	t, err := theme.LoadFile(path)
	if err != nil {
		return nil, ThemeError(path, err)
	}
	return t, nil
}

// ThemeError converts an error from theme.LoadFile into a coded error
// pointing at path.
func ThemeError(path string, err error) *errors.DonutError {
	var verr *theme.ValidationError
	switch {
	case stderrors.As(err, &verr):
		lines := make([]string, len(verr.Problems))
		for i, p := range verr.Problems {
			lines[i] = p.String()
		}
		return errors.New("E100").
			WithLocation(path, 0, 0).
			WithDetail(strings.Join(lines, "\n")).
			WithSuggestion("Roles must name a ramp step that exists, such as donut-500")
	case stderrors.Is(err, theme.ErrUnknownFormat):
		return errors.New("E102").
			WithLocation(path, 0, 0).
			WithSuggestion("Use a .json, .yaml or .toml theme file").
			Wrap(err)
	case stderrors.Is(err, os.ErrNotExist):
		return errors.New("E103").
			WithLocation(path, 0, 0).
			WithSuggestion("Create it with 'donut init' or clear theme.file in " + ConfigFileName).
			Wrap(err)
	default:
		return errors.New("E101").WithLocationFromError(path, err).Wrap(err)
	}
}
