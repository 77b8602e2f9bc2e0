// Package hooking lets observers follow what happens in the kitchen without
// the kitchen knowing who is listening.
package hooking

// HookPos names the point at which a hook fires.
type HookPos struct {
	Name string
}

// HookCtx carries everything a hook gets to see when it fires.
type HookCtx struct {
	// Domain is the object raising the hook.
	Domain Hookable

	// Pos is where the hook fires from.
	Pos *HookPos

	// Item is the subject of the hook, usually a pizza.
	Item any

	// Detail is optional extra data. It may be nil.
	Detail any
}

// Hookable is an object that hooks can be attached to.
type Hookable interface {
	// AcceptHook registers a hook. Hooks cannot be removed.
	AcceptHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int

	// InvokeHook triggers all the registered hooks.
	InvokeHook(ctx HookCtx)
}

// Hook is a short piece of program that runs when a Hookable invokes it.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc turns a plain function into a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// HookableBase implements Hookable and is meant to be embedded.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// AcceptHook registers a hook. Registering the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.mustNotHaveDuplicatedHook(hook)
	h.hookList = append(h.hookList, hook)
}

func (h *HookableBase) mustNotHaveDuplicatedHook(hook Hook) {
	if _, isFunc := hook.(HookFunc); isFunc {
		// Functions cannot be compared.
		return
	}

	for _, registered := range h.hookList {
		if registered == hook {
			panic("duplicated hook")
		}
	}
}

// InvokeHook triggers the registered hooks in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}

var _ Hookable = (*HookableBase)(nil)
