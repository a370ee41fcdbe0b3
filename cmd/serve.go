package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpapi "github.com/davidbz/shreegen/internal/http"
	"github.com/davidbz/shreegen/internal/observability"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the completion router HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}

			return container.Invoke(func(logger *zap.Logger, server *httpapi.Server) error {
				defer func() { _ = logger.Sync() }()

				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				errs := make(chan error, 1)
				go func() {
					errs <- server.Start()
				}()

				select {
				case err := <-errs:
					return err
				case <-ctx.Done():
				}

				observability.FromContext(ctx).Info("shutdown signal received")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("graceful shutdown failed: %w", err)
				}
				return <-errs
			})
		},
	}
}
