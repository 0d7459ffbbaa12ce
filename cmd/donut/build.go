package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donutdao/donut-ui/internal/config"
	"github.com/donutdao/donut-ui/internal/errors"
	"github.com/donutdao/donut-ui/internal/reload"
	"github.com/donutdao/donut-ui/internal/tailwind"
	"github.com/donutdao/donut-ui/pkg/theme"
)

type buildOptions struct {
	tailwind bool
	watch    bool
}

func (a *app) buildCmd() *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the theme for Tailwind CSS",
		Long: `Write tailwind.config.js and the @theme stylesheet from the theme file.

When tailwind.enabled is set in donut.json, or --tailwind is passed, the
Tailwind standalone binary then compiles the input stylesheet. The binary
is downloaded on first use.

Examples:
  donut build
  donut build --tailwind
  donut build --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runBuild(ctx, cfg, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.tailwind, "tailwind", false, "Compile CSS with the Tailwind binary")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Rebuild when the theme file changes")

	return cmd
}

func (a *app) runBuild(ctx context.Context, cfg *config.Config, opts buildOptions) error {
	start := time.Now()

	if err := a.exportTheme(cfg); err != nil {
		return err
	}

	var runner *tailwind.Runner
	if cfg.Tailwind.Enabled || opts.tailwind {
		runner = a.newRunner(cfg)
		if err := runner.Build(ctx, a.runnerConfig(cfg)); err != nil {
			return err
		}
		if info, err := os.Stat(cfg.TailwindOutputPath()); err == nil {
			a.success("Compiled %s (%s)", cfg.Tailwind.Output, formatBytes(info.Size()))
		}
	}

	a.success("Built in %s", time.Since(start).Round(time.Millisecond))

	if !opts.watch {
		return nil
	}
	return a.watchBuild(ctx, cfg, runner)
}

// exportTheme loads the theme and writes both Tailwind exports.
func (a *app) exportTheme(cfg *config.Config) error {
	t, err := cfg.LoadTheme()
	if err != nil {
		return err
	}

	outputs := []struct {
		path   string
		format theme.Format
	}{
		{cfg.TailwindConfigPath(), theme.FormatTailwind},
		{cfg.ThemeCSSPath(), theme.FormatCSS},
	}
	for _, out := range outputs {
		var buf bytes.Buffer
		if err := theme.Encode(&buf, t, out.format); err != nil {
			return errors.New("E104").Wrap(err)
		}
		if err := writeFile(out.path, buf.Bytes()); err != nil {
			return err
		}
		a.success("Wrote %s (%s)", relPath(cfg, out.path), formatBytes(int64(buf.Len())))
	}
	return nil
}

func (a *app) newRunner(cfg *config.Config) *tailwind.Runner {
	binDir := cfg.Tailwind.BinDir
	if binDir != "" && !filepath.IsAbs(binDir) {
		binDir = filepath.Join(cfg.Dir(), binDir)
	}
	runner := tailwind.NewRunner(tailwind.NewBinary(cfg.Tailwind.Version, binDir), cfg.Dir(), a.logger)
	runner.Stderr = a.stderr
	return runner
}

func (a *app) runnerConfig(cfg *config.Config) tailwind.RunnerConfig {
	return tailwind.RunnerConfig{
		InputPath:  cfg.Tailwind.Input,
		OutputPath: cfg.Tailwind.Output,
		ConfigPath: cfg.Tailwind.ConfigOut,
		Minify:     cfg.Tailwind.Minify,
	}
}

// watchBuild re-exports the theme on every change until ctx is canceled.
// The Tailwind watcher, if any, picks up the rewritten theme.css itself.
func (a *app) watchBuild(ctx context.Context, cfg *config.Config, runner *tailwind.Runner) error {
	path := cfg.ThemePath()
	if path == "" {
		a.warn("No theme file configured; nothing to watch")
		return nil
	}

	w := reload.NewWatcher(reload.WatcherConfig{Paths: []string{path}, Logger: a.logger})
	w.OnChange(func(changes []reload.Change) {
		fmt.Fprintln(a.stdout)
		a.info("%s changed", relPath(cfg, changes[0].Path))
		if err := a.exportTheme(cfg); err != nil {
			errors.PrintError(a.stderr, err)
		}
	})
	if err := w.Start(ctx); err != nil {
		return err
	}

	if runner != nil {
		if err := runner.StartWatch(ctx, a.runnerConfig(cfg)); err != nil {
			return err
		}
		defer runner.Stop()
	}

	a.info("Watching %s (Ctrl+C to stop)", relPath(cfg, path))
	<-ctx.Done()
	<-w.Done()
	return nil
}
