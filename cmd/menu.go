package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/pizzeria/pizza"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the pizzas and what they are made of.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, v := range pizza.Variants() {
				for name, recipe := range pizza.New(v).Entries() {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s\n", name, recipe)
				}
			}
		},
	}
}
