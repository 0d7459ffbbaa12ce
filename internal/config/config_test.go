package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donutdao/donut-ui/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Gallery.Port != DefaultGalleryPort {
		t.Errorf("Gallery.Port = %d, want %d", cfg.Gallery.Port, DefaultGalleryPort)
	}
	if cfg.Gallery.Host != DefaultGalleryHost {
		t.Errorf("Gallery.Host = %q, want %q", cfg.Gallery.Host, DefaultGalleryHost)
	}
	if cfg.Tailwind.ConfigOut != "tailwind.config.js" {
		t.Errorf("Tailwind.ConfigOut = %q", cfg.Tailwind.ConfigOut)
	}
	if cfg.Publish.Region != "" {
		t.Errorf("Publish.Region = %q, want it left to the AWS chain", cfg.Publish.Region)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("New() should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if errors.Code(err) != "E120" {
		t.Errorf("missing config: code = %q, want E120 (%v)", errors.Code(err), err)
	}

	writeConfig(t, tmpDir, `{
  "name": "storefront",
  "theme": {"file": "design/theme.yaml"},
  "tailwind": {"enabled": true, "input": "in.css", "output": "out.css", "version": "v3.4.17"},
  "gallery": {"port": 8080},
  "publish": {"bucket": "tokens", "prefix": "donut/"}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Name != "storefront" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Gallery.Port != 8080 {
		t.Errorf("Gallery.Port = %d, want 8080", cfg.Gallery.Port)
	}
	if cfg.Gallery.Host != DefaultGalleryHost {
		t.Errorf("Gallery.Host = %q, want default", cfg.Gallery.Host)
	}
	if !cfg.Gallery.Watch {
		t.Error("Gallery.Watch should keep its default")
	}
	if cfg.Tailwind.CSSOut != "styles/theme.css" {
		t.Errorf("Tailwind.CSSOut = %q, want default", cfg.Tailwind.CSSOut)
	}
	if cfg.Publish.Bucket != "tokens" || cfg.Publish.Region != "" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.ThemePath() != filepath.Join(tmpDir, "design/theme.yaml") {
		t.Errorf("ThemePath() = %q", cfg.ThemePath())
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "{\n  \"gallery\": {\n    \"port\": 80,\n  }\n}\n")

	_, err := LoadFile(path)
	var de *errors.DonutError
	if !stderrors.As(err, &de) {
		t.Fatalf("expected DonutError, got %v", err)
	}
	if de.Code != "E121" {
		t.Errorf("Code = %q, want E121", de.Code)
	}
	if de.Location == nil || de.Location.Line != 4 {
		t.Errorf("Location = %+v, want line 4", de.Location)
	}
}

func TestLoadFile_WrongType(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"gallery": {"port": "high"}}`)

	_, err := LoadFile(path)
	if errors.Code(err) != "E121" {
		t.Errorf("code = %q, want E121", errors.Code(err))
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"publish": {"bucket": "from-file"}}`)

	t.Setenv(EnvGalleryPort, "9000")
	t.Setenv(EnvPublishBucket, "from-env")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Gallery.Port != 9000 {
		t.Errorf("Gallery.Port = %d, want 9000", cfg.Gallery.Port)
	}
	if cfg.Publish.Bucket != "from-env" {
		t.Errorf("Publish.Bucket = %q, want from-env", cfg.Publish.Bucket)
	}

	t.Setenv(EnvGalleryPort, "nine")
	if _, err := LoadFile(path); errors.Code(err) != "E122" {
		t.Errorf("bad port env: code = %q, want E122", errors.Code(err))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port too high", func(c *Config) { c.Gallery.Port = 70000 }, "gallery.port must be <= 65535"},
		{"port negative", func(c *Config) { c.Gallery.Port = -1 }, "gallery.port must be >= 1"},
		{"theme format", func(c *Config) { c.Theme.File = "theme.ini" }, "theme.file must be"},
		{"tailwind version", func(c *Config) { c.Tailwind.Version = "latest" }, "tailwind.version must be"},
		{"tailwind input", func(c *Config) { c.Tailwind.Enabled = true; c.Tailwind.Input = "" }, "tailwind.input is required"},
		{"endpoint", func(c *Config) { c.Publish.Endpoint = "not a url" }, "publish.endpoint failed url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Code(err) != "E122" {
				t.Errorf("code = %q, want E122", errors.Code(err))
			}
			var de *errors.DonutError
			stderrors.As(err, &de)
			if !strings.Contains(de.Detail, tt.want) {
				t.Errorf("Detail = %q, want it to contain %q", de.Detail, tt.want)
			}
		})
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Error("Save() without a path should fail")
	}

	cfg.Name = "saved"
	cfg.Theme.File = "theme.toml"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if loaded.Name != "saved" || loaded.Theme.File != "theme.toml" {
		t.Errorf("loaded = %+v", loaded)
	}

	loaded.Gallery.Port = 5000
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"port": 5000`) {
		t.Errorf("saved file missing port: %s", data)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Error("saved file should end with a newline")
	}
}

func TestPaths(t *testing.T) {
	cfg := New()
	cfg.configPath = filepath.Join("/project", ConfigFileName)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"theme builtin", cfg.ThemePath(), ""},
		{"tailwind config", cfg.TailwindConfigPath(), filepath.Join("/project", "tailwind.config.js")},
		{"theme css", cfg.ThemeCSSPath(), filepath.Join("/project", "styles/theme.css")},
		{"input", cfg.TailwindInputPath(), filepath.Join("/project", "styles/input.css")},
		{"output", cfg.TailwindOutputPath(), filepath.Join("/project", "public/styles.css")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	cfg.Tailwind.CSSOut = "/abs/theme.css"
	if cfg.ThemeCSSPath() != "/abs/theme.css" {
		t.Errorf("absolute path should be kept, got %q", cfg.ThemeCSSPath())
	}
}

func TestGalleryURL(t *testing.T) {
	cfg := New()
	cfg.Gallery.Host = "0.0.0.0"
	cfg.Gallery.Port = 8080

	if cfg.GalleryAddress() != "0.0.0.0:8080" {
		t.Errorf("GalleryAddress() = %q", cfg.GalleryAddress())
	}
	if cfg.GalleryURL() != "http://0.0.0.0:8080" {
		t.Errorf("GalleryURL() = %q", cfg.GalleryURL())
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	if Exists(tmpDir) {
		t.Error("Exists() = true for empty dir")
	}
	writeConfig(t, tmpDir, "{}")
	if !Exists(tmpDir) {
		t.Error("Exists() = false after writing config")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "{}")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
}

func TestLoadFromWorkingDir(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"name": "wd"}`)
	nested := filepath.Join(root, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadFromWorkingDir()
	if err != nil {
		t.Fatalf("LoadFromWorkingDir() error: %v", err)
	}
	if cfg.Name != "wd" {
		t.Errorf("Name = %q, want wd", cfg.Name)
	}
}
