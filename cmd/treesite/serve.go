package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/treesite/internal/dev"
	"github.com/vango-dev/treesite/pkg/metrics"
)

func serveCmd() *cobra.Command {
	var (
		flags    buildFlags
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Build the site and serve the output directory.

The preview server watches the content and static directories and the
configuration file, rebuilds on change and refreshes connected browsers.

Endpoints:
  /                    the output directory
  /_treesite/reload    live reload WebSocket
  /_treesite/metrics   Prometheus build metrics

Examples:
  treesite serve
  treesite serve --port=3000 --drafts`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.config)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			logger := newLogger(flags.verbose)
			p := &project{
				cfg:      cfg,
				logger:   logger,
				observer: metrics.New(metrics.WithRegistry(reg)),
			}

			out := cmd.OutOrStdout()
			server := dev.NewServer(dev.ServerOptions{
				Config:        cfg,
				Build:         p.build,
				Logger:        logger,
				Metrics:       reg,
				DisableReload: noReload,
				OnReload: func(clients int) {
					if clients > 0 {
						success(out, "Reloaded %d browsers", clients)
					}
				},
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info(out, "Serving %s at %s", cfg.OutputPath(), cfg.DevURL())
			return server.Start(ctx)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from treesite.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from treesite.yaml)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}
