package theme

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalid is matched by every ValidationError.
	ErrInvalid = errors.New("theme: invalid")

	// ErrUnknownFormat is returned for theme files with an unsupported extension.
	ErrUnknownFormat = errors.New("theme: unknown format")
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexPattern    = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcPattern   = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla|oklch|oklab)\([^()]*\)$`)
	refPattern    = regexp.MustCompile(`^([a-z][a-z0-9]*(?:-[a-z][a-z0-9]*)*)-(\d+)$`)
	lengthPattern = regexp.MustCompile(`^(?:0|\d*\.?\d+(?:px|rem|em|%|vw|vh))$`)
	namePattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color_or_ref", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return isColor(s) || refPattern.MatchString(s)
		})

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			return lengthPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("dark_mode", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "", DarkModeClass, DarkModeSelector, DarkModeMedia:
				return true
			}
			return false
		})

		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return namePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isColor reports whether s is a literal CSS color value.
func isColor(s string) bool {
	switch s {
	case "transparent", "currentColor", "inherit":
		return true
	}
	return hexPattern.MatchString(s) || funcPattern.MatchString(s)
}

// FieldError describes one invalid token.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError lists every problem found in a theme.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return "theme: invalid: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Has reports whether a problem was recorded for field.
func (e *ValidationError) Has(field string) bool {
	for _, p := range e.Problems {
		if p.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Problems = append(e.Problems, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate checks the token table for internal consistency. Every ramp step
// must be a literal color, every role must resolve to a color, and every
// animation must name a defined keyframes entry. All problems are reported
// in a single *ValidationError.
func (t *Theme) Validate() error {
	if t == nil {
		return &ValidationError{Problems: []FieldError{{Field: "theme", Message: "is nil"}}}
	}

	verr := &ValidationError{}

	if err := validatorInstance().Struct(t); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("theme: validate: %w", err)
		}
		for _, fe := range fieldErrs {
			verr.add(fieldPath(fe), "failed %s", describeTag(fe))
		}
	}

	for _, name := range sortedKeys(t.Ramps, rampOrder...) {
		for _, step := range sortedKeys(t.Ramps[name]) {
			if value := t.Ramps[name][step]; !isColor(value) {
				verr.add("ramps."+name+"."+step, "%q is not a color", value)
			}
		}
	}

	for _, name := range sortedKeys(t.Roles, roleOrder...) {
		role := t.Roles[name]
		if role.Default != "" {
			if _, ok := t.Resolve(role.Default); !ok {
				verr.add("roles."+name, "%q does not resolve to a color", role.Default)
			}
		}
		if role.Foreground != "" {
			if _, ok := t.Resolve(role.Foreground); !ok {
				verr.add("roles."+name+".foreground", "%q does not resolve to a color", role.Foreground)
			}
		}
	}

	for _, name := range sortedKeys(t.Animation) {
		fields := strings.Fields(t.Animation[name])
		if len(fields) == 0 {
			continue
		}
		if _, ok := t.Keyframes[fields[0]]; !ok {
			verr.add("animation."+name, "keyframes %q are not defined", fields[0])
		}
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

// Resolve returns the literal color for value, following a ramp reference
// like "corp-950" when needed.
func (t *Theme) Resolve(value string) (string, bool) {
	if isColor(value) {
		return value, true
	}
	m := refPattern.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	color, ok := t.Ramps[m[1]][m[2]]
	if !ok || !isColor(color) {
		return "", false
	}
	return color, true
}

// fieldPath converts a validator namespace like "Theme.roles[card].DEFAULT"
// into "roles.card.DEFAULT".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
