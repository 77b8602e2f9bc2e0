// Package kitchen bakes pizzas and sends them out, reporting how long
// each action took.
package kitchen

import (
	"fmt"
	"io"

	"github.com/sarchlab/pizzeria/hooking"
	"github.com/sarchlab/pizzeria/pizza"
)

// DefaultTemplate is printed when an action is logged without a template. It
// takes the action name and the time.
const DefaultTemplate = "%s - %dc!"

// Templates of the actions every kitchen performs. Each takes the time.
const (
	BakeTemplate     = "Baked in %ds!"
	DeliveryTemplate = "Delivered in %ds!"
	PickupTemplate   = "Picked up in %ds!"
)

// HookPosActionDone marks that a logged action has finished. The hook item is
// the pizza and the detail is an ActionRecord.
var HookPosActionDone = &hooking.HookPos{Name: "ActionDone"}

// ActionRecord describes a finished action.
type ActionRecord struct {
	Name string
	Time int
}

// An Action does something to a pizza and hands it on.
type Action func(p *pizza.Pizza) *pizza.Pizza

// A Step is an Action wrapped by Kitchen.Log. It only reports errors, which
// happen when the pizza has an invalid size.
type Step func(p *pizza.Pizza) error

func bake(p *pizza.Pizza) *pizza.Pizza {
	return p
}

func delivery(p *pizza.Pizza) *pizza.Pizza {
	return p
}

func pickup(p *pizza.Pizza) *pizza.Pizza {
	return p
}

// Kitchen performs timed actions on pizzas and prints how long they took.
type Kitchen struct {
	hooking.HookableBase

	name  string
	out   io.Writer
	timer Timer

	Bake    Step
	Deliver Step
	Pickup  Step
}

// Name returns the name of the kitchen.
func (k *Kitchen) Name() string {
	return k.name
}

// Log wraps an action. The returned step runs the action, draws a time that
// depends on the size of the resulting pizza, and prints one line. With an
// empty template the line is DefaultTemplate filled with the name and the
// time. Otherwise the template is filled with the time.
func (k *Kitchen) Log(name string, action Action, template string) Step {
	return func(p *pizza.Pizza) error {
		result := action(p)

		size, err := result.Size()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		time := k.timer.Delay(size)

		if template == "" {
			fmt.Fprintf(k.out, DefaultTemplate+"\n", name, time)
		} else {
			fmt.Fprintf(k.out, template+"\n", time)
		}

		k.InvokeHook(hooking.HookCtx{
			Domain: k,
			Pos:    HookPosActionDone,
			Item:   result,
			Detail: ActionRecord{Name: name, Time: time},
		})

		return nil
	}
}
