package tailwind

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/donutdao/donut-ui/internal/errors"
)

// RunnerConfig configures one Tailwind invocation. Paths are relative to
// the runner's project directory.
type RunnerConfig struct {
	InputPath  string
	OutputPath string

	// ConfigPath is the tailwind.config.js path. It is passed only to v3
	// binaries; v4 ignores it.
	ConfigPath string

	// Minify applies to one-shot builds only.
	Minify bool
}

// Runner runs the Tailwind CLI in a project directory, either once with
// Build or as a background watcher with StartWatch.
type Runner struct {
	binary     *Binary
	projectDir string
	logger     *slog.Logger

	// Stdout and Stderr receive the process output. Nil discards stdout
	// and keeps stderr only for error reports.
	Stdout io.Writer
	Stderr io.Writer

	mu    sync.Mutex
	watch *exec.Cmd
	done  chan struct{}
}

// NewRunner creates a new Tailwind runner. A nil logger uses slog.Default().
func NewRunner(binary *Binary, projectDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		binary:     binary,
		projectDir: projectDir,
		logger:     logger.With("component", "tailwind"),
	}
}

func (r *Runner) args(cfg RunnerConfig, watch bool) []string {
	args := []string{"-i", cfg.InputPath, "-o", cfg.OutputPath}
	if watch {
		// --watch=always keeps the process alive when stdin closes.
		args = append(args, "--watch=always")
	}
	if cfg.ConfigPath != "" && UsesConfigFile(r.binary.Version) {
		args = append(args, "-c", cfg.ConfigPath)
	}
	if cfg.Minify && !watch {
		args = append(args, "--minify")
	}
	return args
}

func (r *Runner) install(ctx context.Context) (string, error) {
	return r.binary.EnsureInstalled(ctx, func(msg string) { r.logger.Info(msg) })
}

// Build runs a one-shot build. A failing build returns E141 with the tail
// of the process's stderr as detail.
func (r *Runner) Build(ctx context.Context, cfg RunnerConfig) error {
	path, err := r.install(ctx)
	if err != nil {
		return err
	}

	args := r.args(cfg, false)
	r.logger.Debug("running tailwind", "bin", path, "args", strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = r.projectDir
	cmd.Stdout = r.Stdout
	cmd.Stderr = &stderr
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, r.Stderr)
	}

	start := time.Now()
	if err := cmd.Run(); err != nil {
		e := errors.New("E141").Wrap(err)
		if tail := lastLines(strings.TrimSpace(stderr.String()), 10); tail != "" {
			e.WithDetail(tail)
		}
		return e
	}
	r.logger.Info("tailwind build finished", "output", cfg.OutputPath, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	return strings.Join(lines[max(len(lines)-n, 0):], "\n")
}

// StartWatch starts Tailwind in watch mode in the background. It is a no-op
// while a watcher is running. The process lives until Stop, not until ctx
// ends; ctx only bounds the download.
func (r *Runner) StartWatch(ctx context.Context, cfg RunnerConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.watch != nil {
		return nil
	}

	path, err := r.install(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, r.args(cfg, true)...)
	cmd.Dir = r.projectDir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Start(); err != nil {
		return errors.New("E141").WithDetail("The watcher could not be started.").Wrap(err)
	}

	done := make(chan struct{})
	r.watch, r.done = cmd, done
	r.logger.Info("tailwind watching", "input", cfg.InputPath, "output", cfg.OutputPath)

	go func() {
		err := cmd.Wait()
		r.mu.Lock()
		if r.watch == cmd {
			r.watch, r.done = nil, nil
		}
		r.mu.Unlock()
		close(done)
		if err != nil {
			r.logger.Debug("tailwind watcher exited", "error", err)
		}
	}()
	return nil
}

// Stop kills the watcher and waits up to two seconds for it to exit.
func (r *Runner) Stop() {
	r.mu.Lock()
	cmd, done := r.watch, r.done
	r.mu.Unlock()
	if cmd == nil {
		return
	}

	_ = cmd.Process.Kill()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		r.mu.Lock()
		if r.watch == cmd {
			r.watch, r.done = nil, nil
		}
		r.mu.Unlock()
	}
}

// IsRunning reports whether a watcher is running.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.watch != nil
}
