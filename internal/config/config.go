package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/donutdao/donut-ui/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "donut.json"

	// DefaultGalleryPort is the default gallery server port.
	DefaultGalleryPort = 4477

	// DefaultGalleryHost is the default gallery server host.
	DefaultGalleryHost = "localhost"

	// Environment variables that override the file.
	EnvGalleryPort   = "DONUT_GALLERY_PORT"
	EnvPublishBucket = "DONUT_PUBLISH_BUCKET"
)

// Config represents the complete donut.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Theme selects the theme file.
	Theme ThemeConfig `json:"theme"`

	// Tailwind contains Tailwind CSS output settings.
	Tailwind TailwindConfig `json:"tailwind"`

	// Gallery contains component gallery settings.
	Gallery GalleryConfig `json:"gallery"`

	// Publish contains object storage settings.
	Publish PublishConfig `json:"publish"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ThemeConfig selects the theme source.
type ThemeConfig struct {
	// File is a .json, .yaml or .toml theme overlay. Empty means the
	// built-in theme.
	File string `json:"file,omitempty" validate:"omitempty,theme_file"`
}

// TailwindConfig contains Tailwind CSS settings.
type TailwindConfig struct {
	// Enabled runs the Tailwind binary after writing the theme files.
	Enabled bool `json:"enabled,omitempty"`

	// Version pins the Tailwind standalone binary version. Empty means the
	// version bundled with donut.
	Version string `json:"version,omitempty" validate:"omitempty,tailwind_version"`

	// BinDir is where the binary is cached. Empty means ~/.donut/bin.
	BinDir string `json:"binDir,omitempty"`

	// Input is the input CSS file.
	Input string `json:"input,omitempty" validate:"required_if=Enabled true"`

	// Output is the compiled CSS file.
	Output string `json:"output,omitempty" validate:"required_if=Enabled true"`

	// ConfigOut is where tailwind.config.js is written.
	ConfigOut string `json:"configOut" validate:"required"`

	// CSSOut is where the @theme stylesheet is written.
	CSSOut string `json:"cssOut" validate:"required"`

	// Minify enables CSS minification.
	Minify bool `json:"minify,omitempty"`
}

// GalleryConfig contains component gallery settings.
type GalleryConfig struct {
	// Host is the host to bind to.
	Host string `json:"host" validate:"required"`

	// Port is the port to listen on.
	Port int `json:"port" validate:"min=1,max=65535"`

	// Watch reloads connected browsers when the theme file changes.
	Watch bool `json:"watch,omitempty"`
}

// PublishConfig contains object storage settings for donut publish.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty" validate:"omitempty,excludes=.."`

	// Region overrides the region from the AWS configuration chain.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the service endpoint for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty" validate:"omitempty,url"`

	// PathStyle forces path-style addressing, needed by most S3-compatible stores.
	PathStyle bool `json:"pathStyle,omitempty"`

	// CacheControl is set on every uploaded object.
	CacheControl string `json:"cacheControl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Tailwind: TailwindConfig{
			Input:     "styles/input.css",
			Output:    "public/styles.css",
			ConfigOut: "tailwind.config.js",
			CSSOut:    "styles/theme.css",
			Minify:    true,
		},
		Gallery: GalleryConfig{
			Host:  DefaultGalleryHost,
			Port:  DefaultGalleryPort,
			Watch: true,
		},
		Publish: PublishConfig{
			CacheControl: "public, max-age=300",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for donut.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path, applies
// environment overrides and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E120").
				WithDetail("No donut.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'donut init' to create one")
		}
		return nil, errors.New("E121").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		line := 0
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.As(err, &syntaxErr):
			line = lineOf(data, syntaxErr.Offset)
		case stderrors.As(err, &typeErr):
			line = lineOf(data, typeErr.Offset)
		}
		return nil, errors.New("E121").
			WithLocation(path, line, 0).
			WithSuggestion("Check that donut.json is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// lineOf returns the 1-based line containing byte offset.
func lineOf(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return strings.Count(string(data[:offset]), "\n") + 1
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E123").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E123").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()

	if c.Tailwind.ConfigOut == "" {
		c.Tailwind.ConfigOut = d.Tailwind.ConfigOut
	}
	if c.Tailwind.CSSOut == "" {
		c.Tailwind.CSSOut = d.Tailwind.CSSOut
	}
	if c.Gallery.Host == "" {
		c.Gallery.Host = DefaultGalleryHost
	}
	if c.Gallery.Port == 0 {
		c.Gallery.Port = DefaultGalleryPort
	}
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvGalleryPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("E122").
				WithDetailf("%s=%q is not a number", EnvGalleryPort, v).
				Wrap(err)
		}
		c.Gallery.Port = port
	}
	if v := os.Getenv(EnvPublishBucket); v != "" {
		c.Publish.Bucket = v
	}
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
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

		_ = v.RegisterValidation("theme_file", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(filepath.Ext(fl.Field().String())) {
			case ".json", ".yaml", ".yml", ".toml":
				return true
			}
			return false
		})

		_ = v.RegisterValidation("tailwind_version", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return strings.HasPrefix(s, "v3.") || strings.HasPrefix(s, "v4.")
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.New("E122").Wrap(err)
	}

	problems := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		problems[i] = describe(fe)
	}
	de := errors.New("E122").WithDetail(strings.Join(problems, "; "))
	if c.configPath != "" {
		de = de.WithLocation(c.configPath, 0, 0)
	}
	return de
}

// describe renders a validator error as "gallery.port must be <= 65535".
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	case "theme_file":
		return field + " must be a .json, .yaml, .yml or .toml file"
	case "tailwind_version":
		return field + " must be a v3.x or v4.x release tag"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// resolve makes path absolute against the config directory.
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// ThemePath returns the absolute path to the theme file, or "" when the
// built-in theme is used.
func (c *Config) ThemePath() string {
	return c.resolve(c.Theme.File)
}

// TailwindConfigPath returns the absolute path of the generated tailwind.config.js.
func (c *Config) TailwindConfigPath() string {
	return c.resolve(c.Tailwind.ConfigOut)
}

// ThemeCSSPath returns the absolute path of the generated @theme stylesheet.
func (c *Config) ThemeCSSPath() string {
	return c.resolve(c.Tailwind.CSSOut)
}

// TailwindInputPath returns the absolute path to the input CSS file.
func (c *Config) TailwindInputPath() string {
	return c.resolve(c.Tailwind.Input)
}

// TailwindOutputPath returns the absolute path to the compiled CSS file.
func (c *Config) TailwindOutputPath() string {
	return c.resolve(c.Tailwind.Output)
}

// GalleryAddress returns the listen address of the gallery server.
func (c *Config) GalleryAddress() string {
	return c.Gallery.Host + ":" + strconv.Itoa(c.Gallery.Port)
}

// GalleryURL returns the gallery base URL.
func (c *Config) GalleryURL() string {
	return "http://" + c.GalleryAddress()
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing donut.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E120").
				WithSuggestion("Run 'donut init' to create a new project")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
