package tailwind

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/donutdao/donut-ui/internal/errors"
)

func installFake(t *testing.T, b *Binary, content string) string {
	t.Helper()
	path := b.binaryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll(%q): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
	return path
}

func TestBinary_binaryPath_IncludesVersionDir(t *testing.T) {
	b := &Binary{Version: "vTEST", BinDir: t.TempDir()}
	got := b.binaryPath()
	sep := string(filepath.Separator)
	if !strings.Contains(got, sep+"vTEST"+sep) {
		t.Fatalf("binaryPath = %q, expected version dir", got)
	}
}

func TestBinary_Path(t *testing.T) {
	b := &Binary{Version: "vTEST", BinDir: t.TempDir()}

	_, err := b.Path()
	if errors.Code(err) != "E140" {
		t.Fatalf("Path() on empty dir: err = %v, want E140", err)
	}
	if b.IsInstalled() {
		t.Fatal("IsInstalled() = true before install")
	}

	want := installFake(t, b, "bin")
	if !b.IsInstalled() {
		t.Fatal("IsInstalled() = false after install")
	}
	p1, err := b.Path()
	if err != nil {
		t.Fatalf("Path(): %v", err)
	}
	p2, _ := b.Path()
	if p1 != want || p2 != want {
		t.Fatalf("Path() = %q then %q, want %q", p1, p2, want)
	}
}

func TestBinary_EnsureInstalled_Downloads(t *testing.T) {
	var requests atomic.Int64
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("fake-binary-bytes"))
	}))
	defer srv.Close()

	b := &Binary{
		Version:         "vTEST",
		BinDir:          t.TempDir(),
		DownloadBaseURL: srv.URL + "/releases/download/",
		HTTPClient:      srv.Client(),
	}

	var progress []string
	path, err := b.EnsureInstalled(context.Background(), func(msg string) {
		progress = append(progress, msg)
	})
	if err != nil {
		t.Fatalf("EnsureInstalled: %v", err)
	}
	if path != b.binaryPath() {
		t.Fatalf("path = %q, want %q", path, b.binaryPath())
	}
	if want := "/releases/download/vTEST/" + binaryName(); gotPath != want {
		t.Fatalf("requested %q, want %q", gotPath, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "fake-binary-bytes" {
		t.Fatalf("installed bytes = %q", data)
	}
	if len(progress) != 3 {
		t.Fatalf("progress = %v, want 3 messages", progress)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}

	progress = nil
	if _, err := b.EnsureInstalled(context.Background(), func(msg string) {
		progress = append(progress, msg)
	}); err != nil {
		t.Fatalf("EnsureInstalled second: %v", err)
	}
	if requests.Load() != 1 {
		t.Fatalf("requests = %d, want 1", requests.Load())
	}
	if len(progress) != 0 {
		t.Fatalf("progress on cached binary = %v", progress)
	}
}

func TestBinary_EnsureInstalled_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	b := &Binary{
		Version:         "vTEST",
		BinDir:          t.TempDir(),
		DownloadBaseURL: srv.URL,
		HTTPClient:      srv.Client(),
	}

	_, err := b.EnsureInstalled(context.Background(), nil)
	if errors.Code(err) != "E140" {
		t.Fatalf("err = %v, want E140", err)
	}
	if !strings.Contains(err.Error(), "download failed with status 404") {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.IsInstalled() {
		t.Fatal("failed download left a binary behind")
	}
}

func TestBinary_EnsureInstalled_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Binary{Version: "vTEST", BinDir: t.TempDir(), DownloadBaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := b.EnsureInstalled(ctx, nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
