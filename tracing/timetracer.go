// Package tracing collects statistics about the actions a kitchen performs.
package tracing

import (
	"github.com/sarchlab/pizzeria/hooking"
	"github.com/sarchlab/pizzeria/kitchen"
)

// TimeTracer adds up the simulated time spent in each action.
type TimeTracer struct {
	actionNames []string
	actionTime  map[string]int
	total       int
}

// NewTimeTracer creates a new TimeTracer.
func NewTimeTracer() *TimeTracer {
	return &TimeTracer{
		actionTime: make(map[string]int),
	}
}

// Func records the time of a finished action. Other hook positions are
// ignored.
func (t *TimeTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != kitchen.HookPosActionDone {
		return
	}

	record, ok := ctx.Detail.(kitchen.ActionRecord)
	if !ok {
		return
	}

	if _, found := t.actionTime[record.Name]; !found {
		t.actionNames = append(t.actionNames, record.Name)
	}

	t.actionTime[record.Name] += record.Time
	t.total += record.Time
}

// Actions returns the names of the recorded actions in the order they were
// first seen.
func (t *TimeTracer) Actions() []string {
	return t.actionNames
}

// Of returns the time spent in the given action.
func (t *TimeTracer) Of(action string) int {
	return t.actionTime[action]
}

// Total returns the time spent in all actions.
func (t *TimeTracer) Total() int {
	return t.total
}

var _ hooking.Hook = (*TimeTracer)(nil)
