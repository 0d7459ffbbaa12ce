package theme

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// A role is written as a plain string when it only has a DEFAULT value and
// as an object otherwise, in JSON, YAML and TOML alike.

type roleObject struct {
	Default    string `json:"DEFAULT" yaml:"DEFAULT"`
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Role) MarshalJSON() ([]byte, error) {
	if r.Foreground == "" {
		return json.Marshal(r.Default)
	}
	return json.Marshal(roleObject(r))
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Role{Default: s}
		return nil
	}
	var obj roleObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("role must be a color string or an object with DEFAULT: %w", err)
	}
	*r = Role(obj)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Role) MarshalYAML() (any, error) {
	if r.Foreground == "" {
		return r.Default, nil
	}
	return roleObject(r), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Role) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*r = Role{Default: value.Value}
		return nil
	case yaml.MappingNode:
		var obj roleObject
		if err := value.Decode(&obj); err != nil {
			return err
		}
		*r = Role(obj)
		return nil
	default:
		return fmt.Errorf("line %d: role must be a color string or a mapping with DEFAULT", value.Line)
	}
}

// UnmarshalTOML implements toml.Unmarshaler.
func (r *Role) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*r = Role{Default: v}
		return nil
	case map[string]any:
		var obj Role
		for key, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("role field %q must be a string", key)
			}
			switch key {
			case "DEFAULT":
				obj.Default = s
			case "foreground":
				obj.Foreground = s
			default:
				return fmt.Errorf("unknown role field %q", key)
			}
		}
		*r = obj
		return nil
	default:
		return fmt.Errorf("role must be a color string or a table with DEFAULT, got %T", data)
	}
}
