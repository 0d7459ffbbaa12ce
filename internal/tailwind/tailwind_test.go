package tailwind

import (
	"strings"
	"testing"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"darwin", "arm64", "tailwindcss-macos-arm64"},
		{"darwin", "amd64", "tailwindcss-macos-x64"},
		{"linux", "arm64", "tailwindcss-linux-arm64"},
		{"linux", "amd64", "tailwindcss-linux-x64"},
		{"windows", "amd64", "tailwindcss-windows-x64.exe"},
	}
	for _, tt := range tests {
		if got := assetName(tt.goos, tt.goarch); got != tt.want {
			t.Errorf("assetName(%q, %q) = %q, want %q", tt.goos, tt.goarch, got, tt.want)
		}
	}
	if !strings.HasPrefix(binaryName(), "tailwindcss-") {
		t.Errorf("binaryName() = %q", binaryName())
	}
}

func TestPlatformName(t *testing.T) {
	tests := []struct {
		goos, goarch string
		prefix       string
	}{
		{"darwin", "arm64", "macOS"},
		{"linux", "amd64", "Linux"},
		{"windows", "amd64", "Windows"},
	}
	for _, tt := range tests {
		if got := platformName(tt.goos, tt.goarch); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("platformName(%q, %q) = %q, want prefix %q", tt.goos, tt.goarch, got, tt.prefix)
		}
	}
	if PlatformName() == "" {
		t.Error("PlatformName() returned empty string")
	}
}

func TestNewBinary(t *testing.T) {
	b := NewBinary("", "")
	if b.Version != Version {
		t.Errorf("Version = %s, want %s", b.Version, Version)
	}
	if !strings.Contains(b.BinDir, ".donut") {
		t.Errorf("BinDir = %q, want it under .donut", b.BinDir)
	}

	b = NewBinary("v3.4.17", "/tmp/bin")
	if b.Version != "v3.4.17" || b.BinDir != "/tmp/bin" {
		t.Errorf("NewBinary kept %s %s", b.Version, b.BinDir)
	}
}

func TestMajor(t *testing.T) {
	tests := map[string]int{
		"v4.1.18": 4,
		"v3.4.17": 3,
		"4.0.0":   4,
		"vx.1":    0,
		"":        0,
	}
	for in, want := range tests {
		if got := Major(in); got != want {
			t.Errorf("Major(%q) = %d, want %d", in, got, want)
		}
	}
	if !UsesConfigFile("v3.4.17") || UsesConfigFile("v4.1.18") {
		t.Error("only v3 should use the config file")
	}
}

func TestStarterInput(t *testing.T) {
	v4 := StarterInput("v4.1.18", "theme.css")
	if v4 != "@import \"tailwindcss\";\n@import \"theme.css\";\n" {
		t.Errorf("v4 input = %q", v4)
	}
	v3 := StarterInput("v3.4.17", "theme.css")
	if !strings.Contains(v3, "@tailwind utilities;") || strings.Contains(v3, "theme.css") {
		t.Errorf("v3 input = %q", v3)
	}
}

func TestDownloadURL(t *testing.T) {
	b := &Binary{Version: "v4.1.18", BinDir: t.TempDir()}
	url := b.downloadURL()
	if !strings.HasPrefix(url, GitHubReleaseURL+"/v4.1.18/") {
		t.Errorf("downloadURL = %q", url)
	}
	if !strings.HasSuffix(url, binaryName()) {
		t.Errorf("downloadURL = %q, want suffix %q", url, binaryName())
	}

	b.DownloadBaseURL = "https://mirror.test/dl/"
	if got, want := b.downloadURL(), "https://mirror.test/dl/v4.1.18/"+binaryName(); got != want {
		t.Errorf("downloadURL = %q, want %q", got, want)
	}
}
