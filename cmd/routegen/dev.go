package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/routegen-dev/routegen/internal/dev"
)

func devCmd() *cobra.Command {
	var pages, out, types string
	var port int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Watch the pages directory and regenerate on changes",
		Long: `Run the development loop: regenerate the route configuration whenever
files are added to or removed from the pages directory. Content edits do
not change routing structure and are ignored.

A small HTTP server provides a live-reload WebSocket endpoint
(/_routegen/reload), Prometheus metrics (/metrics), and a liveness
check (/healthz).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(pages, out, types)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Dev.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				Prefix:          "routegen",
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			server, err := dev.NewServer(dev.Options{
				Config: cfg,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.Start(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	addGenFlags(cmd, &pages, &out, &types)
	cmd.Flags().IntVar(&port, "port", 0, "Dev server port (default: 5821)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
