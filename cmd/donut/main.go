package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/donutdao/donut-ui/internal/config"
	"github.com/donutdao/donut-ui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌┐┌┬ ┬┌┬┐
   │││ ││││││ │ │
  ─┴┘└─┘┘└┘└─┘ ┴
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app holds what every command shares: output streams, the logger, and
// the persistent flags.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	renderer *lipgloss.Renderer

	dir      string
	logLevel string
	logJSON  bool
	noColor  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout:   stdout,
		stderr:   stderr,
		logger:   slog.Default(),
		renderer: lipgloss.NewRenderer(stdout),
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		errors.PrintError(stderr, err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "donut",
		Short: "Components and design tokens for donut-ui",
		Long: `donut renders the donut-ui component kit and manages its theme.

  • Button, Card and Input components rendered on the server
  • One theme file exported to tailwind.config.js and a v4 @theme stylesheet
  • A live component gallery that reloads when the theme changes
  • Publishing of the exported theme to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				a.renderer.SetColorProfile(termenv.Ascii)
				errors.DisableColors()
			}
			logger, err := newLogger(a.stderr, a.logLevel, a.logJSON)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.dir, "dir", "C", "", "Project directory (default: nearest directory with donut.json)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.BoolVar(&a.logJSON, "log-json", false, "Write logs as JSON")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		a.initCmd(),
		a.buildCmd(),
		a.themeCmd(),
		a.galleryCmd(),
		a.publishCmd(),
		a.versionCmd(),
	)
	return root
}

func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: use debug, info, warn or error", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// loadConfig finds donut.json from --dir or the working directory.
func (a *app) loadConfig() (*config.Config, error) {
	start := a.dir
	if start == "" {
		start = "."
	}
	root, err := config.FindProjectRoot(start)
	if err != nil {
		return nil, err
	}
	return config.Load(root)
}

// loadConfigOrDefault is loadConfig, except that outside a project it
// returns the defaults, which select the built-in theme.
func (a *app) loadConfigOrDefault() (*config.Config, error) {
	cfg, err := a.loadConfig()
	if errors.Code(err) == "E120" {
		a.logger.Debug("no donut.json found, using defaults")
		return config.New(), nil
	}
	return cfg, err
}

// relPath shortens path for display when it is under the config dir.
func relPath(cfg *config.Config, path string) string {
	if dir := cfg.Dir(); dir != "" {
		if rel, ok := strings.CutPrefix(path, dir+string(os.PathSeparator)); ok {
			return rel
		}
	}
	return path
}

// Status mark colors, taken from the success role and an amber warning.
const (
	colorSuccess = lipgloss.Color("#22c55e")
	colorWarn    = lipgloss.Color("#eab308")
)

// paint colors s for stdout. The renderer drops colors when stdout is not
// a terminal or --no-color is set.
func (a *app) paint(color lipgloss.Color, s string) string {
	return a.renderer.NewStyle().Foreground(color).Render(s)
}

// printBanner prints the donut ASCII art banner.
func (a *app) printBanner() {
	fmt.Fprint(a.stdout, banner)
}

// success prints a success message.
func (a *app) success(format string, args ...any) {
	fmt.Fprintf(a.stdout, "%s %s\n", a.paint(colorSuccess, "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func (a *app) info(format string, args ...any) {
	fmt.Fprintf(a.stdout, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func (a *app) warn(format string, args ...any) {
	fmt.Fprintf(a.stdout, "%s %s\n", a.paint(colorWarn, "⚠"), fmt.Sprintf(format, args...))
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
