package kitchen

import (
	"io"
	"math/rand/v2"
	"os"
)

// Builder can build kitchens.
type Builder struct {
	out   io.Writer
	timer Timer
	seed  uint64
}

// MakeBuilder creates a builder that prints to stdout and uses a randomly
// seeded timer.
func MakeBuilder() Builder {
	return Builder{
		out: os.Stdout,
	}
}

// WithOutput sets where the kitchen prints the action lines.
func (b Builder) WithOutput(w io.Writer) Builder {
	b.out = w
	return b
}

// WithTimer sets the timer. It takes precedence over WithSeed.
func (b Builder) WithTimer(t Timer) Builder {
	b.timer = t
	return b
}

// WithSeed seeds the default timer. A zero seed picks a random one.
func (b Builder) WithSeed(seed uint64) Builder {
	b.seed = seed
	return b
}

// Build creates a kitchen with the given name.
func (b Builder) Build(name string) *Kitchen {
	k := &Kitchen{
		name:  name,
		out:   b.out,
		timer: b.timer,
	}

	if k.timer == nil {
		seed := b.seed
		if seed == 0 {
			seed = rand.Uint64()
		}

		k.timer = NewRandTimer(seed)
	}

	k.Bake = k.Log("bake", bake, BakeTemplate)
	k.Deliver = k.Log("delivery", delivery, DeliveryTemplate)
	k.Pickup = k.Log("pickup", pickup, PickupTemplate)

	return k
}
