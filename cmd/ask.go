package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

func newAskCommand() *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "ask [prompt]",
		Short: "Run one completion through the router",
		Example: `  shreegen ask --category fast "Explain photosynthesis in two lines"
  shreegen ask --category research --json "Latest findings on dark matter"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}

			return container.Invoke(func(
				logger *zap.Logger,
				registry *domain.RegistryService,
				gateway *domain.GatewayService,
			) error {
				defer func() { _ = logger.Sync() }()

				parsed, err := registry.Categories().Parse(category)
				if err != nil {
					return err
				}

				ctx := observability.WithRequestID(cmd.Context(), observability.GenerateRequestID())
				result := gateway.RunCompletion(ctx, strings.Join(args, " "), parsed)

				out := cmd.OutOrStdout()
				if asJSON {
					encoder := json.NewEncoder(out)
					encoder.SetIndent("", "  ")
					return encoder.Encode(result)
				}

				if result.Error {
					return errors.New(result.Message)
				}

				fmt.Fprintln(out, result.Text)
				for i, source := range result.Sources {
					fmt.Fprintf(out, "[%d] %s %s\n", i+1, source.Title, source.URI)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "answered by %s\n", result.ModelUsed)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryFast), "capability category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw completion result")

	return cmd
}
