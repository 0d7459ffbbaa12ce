package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donutdao/donut-ui/internal/publish"
)

func (a *app) publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the exported theme to S3",
		Long: `Upload theme.json, theme.css and tailwind.config.js to an S3 bucket,
plus the compiled stylesheet when Tailwind is enabled and it has been built.

Credentials and region come from the standard AWS chain: environment,
~/.aws/config and ~/.aws/credentials (AWS_PROFILE), SSO, or an instance
role. publish.region in donut.json overrides the region. Set
publish.endpoint for S3-compatible stores.

Examples:
  donut publish
  donut publish --bucket assets --prefix ui/v2 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("bucket") {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := publish.NewS3Client(ctx, publish.ClientOptions{
				Region:    cfg.Publish.Region,
				Endpoint:  cfg.Publish.Endpoint,
				PathStyle: cfg.Publish.PathStyle,
			})
			if err != nil {
				return err
			}
			p, err := publish.New(client, publish.Config{
				Bucket:       cfg.Publish.Bucket,
				Prefix:       cfg.Publish.Prefix,
				CacheControl: cfg.Publish.CacheControl,
				DryRun:       dryRun,
				Logger:       a.logger,
			})
			if err != nil {
				return err
			}

			t, err := cfg.LoadTheme()
			if err != nil {
				return err
			}
			objects, err := publish.ThemeObjects(t)
			if err != nil {
				return err
			}
			if cfg.Tailwind.Enabled {
				out := cfg.TailwindOutputPath()
				if _, err := os.Stat(out); err == nil {
					obj, err := publish.FileObject(out, filepath.Base(out))
					if err != nil {
						return err
					}
					objects = append(objects, obj)
				} else {
					a.warn("%s not built; run 'donut build' to include it", cfg.Tailwind.Output)
				}
			}

			uploaded, err := p.Publish(ctx, objects)
			for _, u := range uploaded {
				a.success("%s (%s, sha256 %s)", u.Key, formatBytes(int64(u.Bytes)), u.SHA256[:12])
			}
			if err != nil {
				return err
			}
			if dryRun {
				a.info("Dry run: nothing was uploaded to s3://%s", cfg.Publish.Bucket)
			} else {
				a.info("Published %d objects to s3://%s", len(uploaded), cfg.Publish.Bucket)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from donut.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from donut.json)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be uploaded without uploading")
	return cmd
}
