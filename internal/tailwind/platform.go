package tailwind

import "runtime"

// binaryName returns the release asset name for the current platform.
func binaryName() string {
	return assetName(runtime.GOOS, runtime.GOARCH)
}

func assetName(goos, goarch string) string {
	arch := "x64"
	if goarch == "arm64" {
		arch = "arm64"
	}
	switch goos {
	case "darwin":
		return "tailwindcss-macos-" + arch
	case "windows":
		return "tailwindcss-windows-x64.exe"
	default:
		return "tailwindcss-linux-" + arch
	}
}

// PlatformName returns a human-readable platform name.
func PlatformName() string {
	return platformName(runtime.GOOS, runtime.GOARCH)
}

func platformName(goos, goarch string) string {
	switch goos {
	case "darwin":
		if goarch == "arm64" {
			return "macOS (Apple Silicon)"
		}
		return "macOS (Intel)"
	case "windows":
		return "Windows (x64)"
	default:
		if goarch == "arm64" {
			return "Linux (ARM64)"
		}
		return "Linux (x64)"
	}
}
