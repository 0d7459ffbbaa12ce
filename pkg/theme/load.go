package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a theme serialization.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatTailwind Format = "tailwind" // tailwind.config.js, export only
	FormatCSS      Format = "css"      // v4 @theme stylesheet, export only
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".js", ".cjs":
		return FormatTailwind, nil
	case ".css":
		return FormatCSS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ParseFormat validates a format name such as the value of a CLI flag.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatTailwind, FormatCSS:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "js":
		return FormatTailwind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Decode reads a partial theme in the given format. Tokens missing from the
// input are left empty; use Load to overlay the input on the defaults.
func Decode(r io.Reader, format Format) (*Theme, error) {
	t := &Theme{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(t); err != nil {
			return nil, fmt.Errorf("theme: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(t); err != nil && err != io.EOF {
			return nil, fmt.Errorf("theme: decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(t)
		if err != nil {
			return nil, fmt.Errorf("theme: decode toml: %w", err)
		}
		for _, key := range md.Undecoded() {
			// Role tables are consumed by Role.UnmarshalTOML.
			if len(key) == 3 && key[0] == "roles" {
				continue
			}
			return nil, fmt.Errorf("theme: decode toml: unknown key %q", key.String())
		}
	default:
		return nil, fmt.Errorf("%w: cannot decode %q", ErrUnknownFormat, format)
	}
	return t, nil
}

// Load overlays the theme read from r on the defaults and validates the
// result.
func Load(r io.Reader, format Format) (*Theme, error) {
	overlay, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	t := Default()
	t.Merge(overlay)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile loads a theme file. The format is chosen by extension.
func LoadFile(path string) (*Theme, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := Load(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode writes t in the given format.
func Encode(w io.Writer, t *Theme, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(t)
	case FormatTailwind:
		return WriteTailwindConfig(w, t)
	case FormatCSS:
		return WriteThemeCSS(w, t)
	default:
		return fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, format)
	}
}
