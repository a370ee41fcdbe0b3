package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "shreegen",
		Short: "Multi-provider completion router for the Shree Gen study assistant",
		Long: `shreegen routes study prompts to the configured AI backends, falling back
across vendors and aggregator gateways until one answers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newAskCommand(),
		newModelsCommand(),
	)

	return root
}
