package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gutendex/explorer/modules/explorer"
	"github.com/gutendex/explorer/pkg/config"
	"github.com/gutendex/explorer/pkg/httpserver"
	"github.com/gutendex/explorer/pkg/logger"
	"github.com/gutendex/explorer/pkg/resultpanel"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API explorer page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log := logger.New(
				logger.WithEnvironment(cfg.Env, cfg.Service),
				logger.WithContextExtractors(logger.RequestIDExtractor()),
			)
			logger.SetAsDefault(log)

			router := explorer.Router(explorer.RouterOptions{
				Config: cfg.Explorer,
				Panel:  resultpanel.NewFromConfig(cfg.Results, resultpanel.WithLogger(log)),
				Logger: log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			if err := srv.Run(ctx, router); err != nil {
				log.ErrorContext(context.WithoutCancel(ctx), "server stopped", logger.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}
