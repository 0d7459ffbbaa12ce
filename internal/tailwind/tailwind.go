// Package tailwind manages the Tailwind CSS standalone binary.
// It downloads and caches the binary and runs it against the exported theme,
// so compiling CSS never requires Node.js.
package tailwind

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// Version is the Tailwind CSS version used when none is pinned.
	// v4.0.0-v4.0.5 exit immediately under --watch; stay above them.
	Version = "v4.1.18"

	// GitHubReleaseURL is the base URL for downloading Tailwind binaries.
	GitHubReleaseURL = "https://github.com/tailwindlabs/tailwindcss/releases/download"

	// DefaultBinDir is the binary cache directory, relative to the home directory.
	DefaultBinDir = ".donut/bin"
)

// Major returns the major version number, or 0 if the version is malformed.
func Major(version string) int {
	major, _, _ := strings.Cut(strings.TrimPrefix(version, "v"), ".")
	n, err := strconv.ParseUint(major, 10, 16)
	if err != nil {
		return 0
	}
	return int(n)
}

// UsesConfigFile reports whether the version reads tailwind.config.js.
// v4 takes its tokens from the @theme stylesheet instead.
func UsesConfigFile(version string) bool {
	return Major(version) == 3
}

// StarterInput returns an input stylesheet for version. For v4 it imports
// themeCSS, which must be relative to the input file.
func StarterInput(version, themeCSS string) string {
	if UsesConfigFile(version) {
		return "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n"
	}
	return fmt.Sprintf("@import \"tailwindcss\";\n@import %q;\n", filepath.ToSlash(themeCSS))
}
