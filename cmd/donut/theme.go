package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/donutdao/donut-ui/internal/config"
	"github.com/donutdao/donut-ui/internal/errors"
	"github.com/donutdao/donut-ui/internal/swatch"
	"github.com/donutdao/donut-ui/pkg/theme"
)

func (a *app) themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and export the theme",
		Long: `Inspect and export the theme.

Without a file argument the theme named in donut.json is used, or the
built-in theme outside a project.`,
	}

	cmd.AddCommand(
		a.themeCheckCmd(),
		a.themeShowCmd(),
		a.themeExportCmd(),
	)
	return cmd
}

func (a *app) themeCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a theme file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, source, err := a.loadTheme(args)
			if err != nil {
				return err
			}
			a.success("%s is valid (%d ramps, %d roles)", source, len(t.Ramps), len(t.Roles))
			return nil
		},
	}
}

func (a *app) themeShowCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print the color ramps and roles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := a.loadTheme(args)
			if err != nil {
				return err
			}
			return swatch.Fprint(a.stdout, t,
				swatch.WithRenderer(a.renderer),
				swatch.WithSwatchWidth(width))
		},
	}

	cmd.Flags().IntVar(&width, "width", 6, "Width of each color block")
	return cmd
}

func (a *app) themeExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the theme",
		Long: `Export the theme as a v4 @theme stylesheet, tailwind.config.js, or a
complete theme file in JSON, YAML or TOML.

Examples:
  donut theme export
  donut theme export --format tailwind -o tailwind.config.js
  donut theme export --format yaml > theme.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := theme.ParseFormat(format)
			if err != nil {
				return errors.New("E102").
					Wrap(err).
					WithSuggestion("Use css, tailwind, json, yaml or toml")
			}
			t, _, err := a.loadTheme(args)
			if err != nil {
				return err
			}
			return a.exportTo(t, f, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "css", "Output format: css, tailwind, json, yaml, toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func (a *app) exportTo(t *theme.Theme, f theme.Format, output string) error {
	var w io.Writer = a.stdout
	if output != "" {
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return errors.New("E142").WithLocation(output, 0, 0).Wrap(err)
		}
		file, err := os.Create(output)
		if err != nil {
			return errors.New("E142").WithLocation(output, 0, 0).Wrap(err)
		}
		defer file.Close()
		w = file
	}
	if err := theme.Encode(w, t, f); err != nil {
		return errors.New("E104").Wrap(err)
	}
	if output != "" {
		fmt.Fprintf(a.stderr, "wrote %s\n", output)
	}
	return nil
}

// loadTheme loads the file named by args, or the configured theme. The
// returned source names it for messages.
func (a *app) loadTheme(args []string) (*theme.Theme, string, error) {
	if len(args) > 0 {
		t, err := theme.LoadFile(args[0])
		if err != nil {
			return nil, "", config.ThemeError(args[0], err)
		}
		return t, args[0], nil
	}

	cfg, err := a.loadConfigOrDefault()
	if err != nil {
		return nil, "", err
	}
	t, err := cfg.LoadTheme()
	if err != nil {
		return nil, "", err
	}
	if cfg.Theme.File == "" {
		return t, "built-in theme", nil
	}
	return t, cfg.Theme.File, nil
}
