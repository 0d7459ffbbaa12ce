package tailwind

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/donutdao/donut-ui/internal/errors"
)

// Binary is one version of the standalone binary in a local cache.
type Binary struct {
	Version string

	// BinDir holds one subdirectory per version.
	BinDir string

	// DownloadBaseURL replaces GitHubReleaseURL, e.g. for a mirror.
	DownloadBaseURL string

	// HTTPClient is used for downloads. Nil uses a client with a five
	// minute timeout.
	HTTPClient *http.Client

	mu   sync.Mutex
	path string
}

// NewBinary creates a Binary for version, cached under binDir.
// Empty arguments select Version and ~/.donut/bin.
func NewBinary(version, binDir string) *Binary {
	if version == "" {
		version = Version
	}
	if binDir == "" {
		binDir = filepath.Join(".", DefaultBinDir)
		if home, err := os.UserHomeDir(); err == nil {
			binDir = filepath.Join(home, DefaultBinDir)
		}
	}
	return &Binary{Version: version, BinDir: binDir, DownloadBaseURL: GitHubReleaseURL}
}

// Path returns the path of the installed binary, or E140 when it has not
// been downloaded.
func (b *Binary) Path() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cached() {
		return b.path, nil
	}
	return "", errors.New("E140").
		WithDetailf("No binary at %s.", b.binaryPath()).
		WithSuggestion("Run 'donut build' with tailwind.enabled set, or download the binary manually")
}

// EnsureInstalled returns the binary path, downloading it first when it is
// missing. progress, if set, receives human-readable status lines.
func (b *Binary) EnsureInstalled(ctx context.Context, progress func(msg string)) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cached() {
		return b.path, nil
	}

	report := func(format string, args ...any) {
		if progress != nil {
			progress(fmt.Sprintf(format, args...))
		}
	}
	report("Downloading Tailwind CSS %s...", b.Version)
	n, err := b.download(ctx)
	if err != nil {
		return "", errors.New("E140").
			WithDetailf("Downloading Tailwind CSS %s for %s failed.", b.Version, PlatformName()).
			Wrap(err)
	}
	report("Downloaded %.1f MB", float64(n)/(1<<20))
	report("Installed to %s", b.binaryPath())

	b.path = b.binaryPath()
	return b.path, nil
}

// IsInstalled reports whether the binary is in the cache.
func (b *Binary) IsInstalled() bool {
	_, err := os.Stat(b.binaryPath())
	return err == nil
}

// cached records and reports an installed binary. b.mu must be held.
func (b *Binary) cached() bool {
	if b.path != "" {
		return true
	}
	if !b.IsInstalled() {
		return false
	}
	b.path = b.binaryPath()
	return true
}

// binaryPath stores one binary per version so upgrades never reuse an old one.
func (b *Binary) binaryPath() string {
	return filepath.Join(b.BinDir, b.Version, binaryName())
}

func (b *Binary) downloadURL() string {
	base := b.DownloadBaseURL
	if base == "" {
		base = GitHubReleaseURL
	}
	return strings.TrimRight(base, "/") + "/" + b.Version + "/" + binaryName()
}

// download fetches the release asset into a temp file and renames it into
// place, so an interrupted download never leaves a runnable partial binary.
func (b *Binary) download(ctx context.Context) (int64, error) {
	dest := b.binaryPath()
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("create bin directory: %w", err)
	}

	url := b.downloadURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	client := b.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download failed with status %d (URL: %s)", resp.StatusCode, url)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+"-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("write binary: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0755); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, fmt.Errorf("install binary: %w", err)
	}
	return n, nil
}
