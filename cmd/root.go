// Package cmd provides the command-line interface of the pizzeria.
package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pizzeria",
		Short: "Order pizzas and see how long they take.",
		Long: `Order pizzas and see how long they take. ` +
			`Each pizza is baked and can then be delivered, picked up, or both. ` +
			`Times are simulated.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log what the kitchen is doing")

	root.AddCommand(newOrderCmd())
	root.AddCommand(newMenuCmd())

	return root
}

// Execute runs the command given on the command line. It is called by
// main.main() and exits with a non-zero status on failure.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}
