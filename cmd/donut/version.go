package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/donutdao/donut-ui/internal/tailwind"
)

func (a *app) versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(a.stdout, version)
				return
			}

			fmt.Fprintf(a.stdout, "donut %s\n", version)
			fmt.Fprintf(a.stdout, "  commit:   %s\n", commit)
			fmt.Fprintf(a.stdout, "  built:    %s\n", date)
			fmt.Fprintf(a.stdout, "  go:       %s\n", runtime.Version())
			fmt.Fprintf(a.stdout, "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(a.stdout, "  tailwind: %s\n", tailwind.Version)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")
	return cmd
}
