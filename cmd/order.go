package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/pizzeria/kitchen"
	"github.com/sarchlab/pizzeria/pizza"
	"github.com/sarchlab/pizzeria/tracing"
)

func newOrderCmd() *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order <pizza>",
		Short: "Bake a pizza, then deliver it or hand it out.",
		Long: "`order <pizza>` bakes one of margherita, pepperoni or hawaiian. " +
			"Add --delivery and/or --pickup to say how it leaves the kitchen.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: variantKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			delivery, _ := cmd.Flags().GetBool("delivery")
			pickup, _ := cmd.Flags().GetBool("pickup")
			size, _ := cmd.Flags().GetString("size")
			seed, _ := cmd.Flags().GetUint64("seed")

			variant, err := pizza.Lookup(args[0])
			if err != nil {
				return err
			}

			p := pizza.MakeBuilder().
				WithSize(pizza.Size(size)).
				Build(variant)

			k := kitchen.MakeBuilder().
				WithOutput(cmd.OutOrStdout()).
				WithSeed(seed).
				Build("Kitchen")

			tracer := tracing.NewTimeTracer()
			k.AcceptHook(tracer)

			order := kitchen.NewOrder(p, delivery, pickup)

			err = k.Serve(order)
			if err != nil {
				return err
			}

			for _, action := range tracer.Actions() {
				log.Printf("order %s: %s took %dc", order.ID, action, tracer.Of(action))
			}

			log.Printf("order %s ready: %dc total", order.ID, tracer.Total())

			return nil
		},
	}

	orderCmd.Flags().Bool("delivery", false, "Deliver the pizza")
	orderCmd.Flags().Bool("pickup", false, "Hand the pizza out for pickup")
	orderCmd.Flags().String("size", string(pizza.DefaultSize), "Size of the pizza, L or XL")
	orderCmd.Flags().Uint64("seed", 0, "Seed of the simulated times, 0 picks a random one")

	return orderCmd
}

func variantKeys() []string {
	keys := make([]string, 0, len(pizza.Variants()))
	for _, v := range pizza.Variants() {
		keys = append(keys, v.Key())
	}

	return keys
}
