package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidbz/shreegen/internal/domain"
)

const cliActor = "cli"

// withRegistry builds the container and runs fn against the registry service.
func withRegistry(fn func(*domain.RegistryService) error) error {
	container, err := buildContainer()
	if err != nil {
		return err
	}

	return container.Invoke(func(logger *zap.Logger, registry *domain.RegistryService) error {
		defer func() { _ = logger.Sync() }()
		return fn(registry)
	})
}

func newModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage the model registry",
		Long: `Manage direct and aggregated registry entries. Changes persist only with
STORE_DRIVER=redis; the memory store is rebuilt on every start.`,
	}

	cmd.AddCommand(
		newModelsListCommand(),
		newModelsAddCommand(),
		newModelsToggleCommand("enable", true),
		newModelsToggleCommand("disable", false),
		newModelsSetKeyCommand(),
		newModelsRemoveCommand(),
		newModelsAuditCommand(),
	)

	return cmd
}

func newModelsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registry entries with credential hints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(func(registry *domain.RegistryService) error {
				snapshot, err := registry.Snapshot(cmd.Context())
				if err != nil {
					return err
				}
				stats, err := registry.Stats(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tKIND\tVENDOR\tMODEL\tCATEGORY\tENABLED\tKEY")
				for _, entry := range append(snapshot.Direct, snapshot.Aggregated...) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%s\n",
						entry.ID, entry.Kind, entry.Vendor, entry.Model, entry.Category,
						entry.Enabled, domain.CredentialHint(entry.Credential))
				}
				if err := w.Flush(); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "\nactive: %d direct, %d aggregated, usage %s\n",
					stats.ActiveDirect, stats.ActiveAggregated, stats.TotalUsage)
				return nil
			})
		},
	}
}

func newModelsAddCommand() *cobra.Command {
	var req domain.AggregatedRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an aggregated gateway entry (key read from stdin)",
		Example: `  echo "$OPENROUTER_KEY" | shreegen models add --gateway openrouter \
      --model meta-llama/llama-3.1-70b-instruct --category thinking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credential, err := readCredential(cmd.InOrStdin())
			if err != nil {
				return err
			}
			req.Credential = credential

			return withRegistry(func(registry *domain.RegistryService) error {
				entry, err := registry.AddAggregated(cmd.Context(), cliActor, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s via %s)\n", entry.ID, entry.Model, entry.Vendor)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Gateway, "gateway", "", "aggregator name, e.g. openrouter or groq")
	cmd.Flags().StringVar(&req.Model, "model", "", "upstream model id")
	cmd.Flags().StringVar(&req.Category, "category", "", "capability category")
	_ = cmd.MarkFlagRequired("gateway")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newModelsToggleCommand(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a registry entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRegistry(func(registry *domain.RegistryService) error {
				entry, err := registry.SetEnabled(cmd.Context(), cliActor, args[0], enabled)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s enabled=%t\n", entry.ID, entry.Enabled)
				return nil
			})
		},
	}
}

func newModelsSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key <id>",
		Short: "Replace an entry's credential (key read from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credential, err := readCredential(cmd.InOrStdin())
			if err != nil {
				return err
			}

			return withRegistry(func(registry *domain.RegistryService) error {
				entry, err := registry.SetCredential(cmd.Context(), cliActor, args[0], credential)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s key set (%s)\n", entry.ID, domain.CredentialHint(entry.Credential))
				return nil
			})
		},
	}
}

func newModelsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an aggregated entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRegistry(func(registry *domain.RegistryService) error {
				if err := registry.RemoveAggregated(cmd.Context(), cliActor, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	}
}

func newModelsAuditCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the registry audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(func(registry *domain.RegistryService) error {
				events, err := registry.Audit(cmd.Context(), limit)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "AT\tACTOR\tACTION\tENTRY\tKEY")
				for _, event := range events {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						event.At.Format("2006-01-02 15:04:05"), event.Actor, event.Action, event.EntryID, event.CredentialHint)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of events to show")

	return cmd
}

// readCredential reads the first line of r.
func readCredential(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}

	credential := strings.TrimSpace(line)
	if credential == "" {
		return "", errors.New("no credential on stdin")
	}
	return credential, nil
}
