package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/donutdao/donut-ui/internal/config"
	"github.com/donutdao/donut-ui/internal/errors"
	"github.com/donutdao/donut-ui/internal/tailwind"
	"github.com/donutdao/donut-ui/pkg/theme"
)

func (a *app) initCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create donut.json and a starter theme",
		Long: `Create donut.json, a theme file holding the default tokens, and a
Tailwind input stylesheet that imports the exported theme.

Examples:
  donut init
  donut init ./web --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			} else if a.dir != "" {
				dir = a.dir
			}
			return a.runInit(dir, format, force)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Theme file format: json, yaml, toml")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing donut.json and theme file")

	return cmd
}

func (a *app) runInit(dir, format string, force bool) error {
	f, err := theme.ParseFormat(format)
	if err != nil || (f != theme.FormatJSON && f != theme.FormatYAML && f != theme.FormatTOML) {
		return errors.New("E102").
			WithDetailf("Cannot create a %q theme file.", format).
			WithSuggestion("Use --format json, yaml or toml")
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return err
	}
	if config.Exists(dir) && !force {
		return errors.New("E123").
			WithLocation(filepath.Join(dir, config.ConfigFileName), 0, 0).
			WithDetail("The project is already initialized.").
			WithSuggestion("Pass --force to overwrite it")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("E123").WithLocation(dir, 0, 0).Wrap(err)
	}

	a.printBanner()

	cfg := config.New()
	cfg.Name = filepath.Base(dir)
	cfg.Theme.File = "theme." + string(f)
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}
	a.success("Created %s", config.ConfigFileName)

	var buf bytes.Buffer
	if err := theme.Encode(&buf, theme.Default(), f); err != nil {
		return errors.New("E104").Wrap(err)
	}
	if err := writeFile(cfg.ThemePath(), buf.Bytes()); err != nil {
		return err
	}
	a.success("Created %s", cfg.Theme.File)

	input := cfg.TailwindInputPath()
	if _, err := os.Stat(input); os.IsNotExist(err) {
		themeCSS, err := filepath.Rel(filepath.Dir(input), cfg.ThemeCSSPath())
		if err != nil {
			themeCSS = cfg.ThemeCSSPath()
		}
		starter := tailwind.StarterInput(cfg.Tailwind.Version, themeCSS)
		if err := writeFile(input, []byte(starter)); err != nil {
			return err
		}
		a.success("Created %s", cfg.Tailwind.Input)
	}

	fmt.Fprintln(a.stdout)
	a.info("Next steps:")
	a.info("  donut build      write tailwind.config.js and %s", cfg.Tailwind.CSSOut)
	a.info("  donut gallery    browse the components at %s", cfg.GalleryURL())
	return nil
}

// writeFile writes data to path, creating parent directories. Failures
// are E142.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("E142").WithLocation(path, 0, 0).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E142").WithLocation(path, 0, 0).Wrap(err)
	}
	return nil
}
