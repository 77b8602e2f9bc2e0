package kitchen

import (
	"math/rand/v2"

	"github.com/sarchlab/pizzeria/pizza"
)

// A Timer decides how long an action takes, in simulated seconds.
type Timer interface {
	Delay(size pizza.Size) int
}

// DelayRange returns the half-open range [lo, hi) that the delay of an action
// on a pizza of the given size is drawn from. XL pizzas always take longer
// than L pizzas.
func DelayRange(size pizza.Size) (lo, hi int) {
	if size == pizza.SizeXL {
		return 11, 21
	}

	return 1, 11
}

type randTimer struct {
	rng *rand.Rand
}

// NewRandTimer creates a timer that draws delays uniformly from DelayRange.
// Timers created with the same seed produce the same delays.
func NewRandTimer(seed uint64) Timer {
	return &randTimer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (t *randTimer) Delay(size pizza.Size) int {
	lo, hi := DelayRange(size)
	return lo + t.rng.IntN(hi-lo)
}
