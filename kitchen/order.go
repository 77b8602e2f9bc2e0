package kitchen

import (
	"log"

	"github.com/rs/xid"

	"github.com/sarchlab/pizzeria/pizza"
)

// An Order asks the kitchen for a pizza and says how it leaves the kitchen.
type Order struct {
	ID       string
	Pizza    *pizza.Pizza
	Delivery bool
	Pickup   bool
}

// NewOrder creates an order with a fresh ID.
func NewOrder(p *pizza.Pizza, delivery, pickup bool) Order {
	return Order{
		ID:       xid.New().String(),
		Pizza:    p,
		Delivery: delivery,
		Pickup:   pickup,
	}
}

// Serve bakes the pizza, then delivers it if asked, then hands it out for
// pickup if asked. It stops at the first failed step.
func (k *Kitchen) Serve(o Order) error {
	log.Printf("%s: order %s: %s, delivery=%t, pickup=%t",
		k.name, o.ID, o.Pizza, o.Delivery, o.Pickup)

	steps := []Step{k.Bake}
	if o.Delivery {
		steps = append(steps, k.Deliver)
	}

	if o.Pickup {
		steps = append(steps, k.Pickup)
	}

	for _, step := range steps {
		err := step(o.Pizza)
		if err != nil {
			log.Printf("%s: order %s failed: %v", k.name, o.ID, err)
			return err
		}
	}

	return nil
}
