package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donutdao/donut-ui/internal/gallery"
)

func (a *app) galleryCmd() *cobra.Command {
	var (
		host    string
		port    int
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Serve the component gallery",
		Long: `Serve every component variant styled with the current theme.

Connected browsers reload when the theme file changes. Prometheus metrics
are served at /metrics.

Examples:
  donut gallery
  donut gallery --port 8080 --no-watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfigOrDefault()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Gallery.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Gallery.Port = port
			}

			initial, err := cfg.LoadTheme()
			if err != nil {
				return err
			}

			gc := gallery.Config{
				Addr:      cfg.GalleryAddress(),
				Theme:     initial,
				LoadTheme: cfg.LoadTheme,
				Watch:     cfg.Gallery.Watch && !noWatch && cfg.ThemePath() != "",
				Logger:    a.logger,
			}
			if gc.Watch {
				gc.WatchPaths = []string{cfg.ThemePath()}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.printBanner()
			a.success("Gallery at %s", cfg.GalleryURL())
			if gc.Watch {
				a.info("Watching %s", relPath(cfg, cfg.ThemePath()))
			}
			a.info("Press Ctrl+C to stop")

			return gallery.New(gc).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind (default from donut.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from donut.json)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload on theme changes")
	return cmd
}
