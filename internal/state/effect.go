package state

import "context"

// Action is anything a Store can dispatch. The name is used for logs and metrics.
type Action interface {
	ActionName() string
}

// Effect describes asynchronous work a reducer wants done. It is either none
// or a named task producing at most one follow-up action.
type Effect[A Action] struct {
	name string
	run  func(ctx context.Context) (A, bool)
}

// None returns the empty effect.
func None[A Action]() Effect[A] {
	return Effect[A]{}
}

// Send returns an effect that immediately yields action as its follow-up.
func Send[A Action](action A) Effect[A] {
	return Effect[A]{
		name: "send:" + action.ActionName(),
		run: func(context.Context) (A, bool) {
			return action, true
		},
	}
}

// Task returns an effect running fn. fn reports false when it completes
// without producing a follow-up action.
func Task[A Action](name string, fn func(ctx context.Context) (A, bool)) Effect[A] {
	if fn == nil {
		return None[A]()
	}
	return Effect[A]{name: name, run: fn}
}

// IsNone reports whether the effect has no work.
func (e Effect[A]) IsNone() bool {
	return e.run == nil
}

// Name identifies the effect; empty for None.
func (e Effect[A]) Name() string {
	return e.name
}

// Run executes the effect and returns its follow-up, if any.
func (e Effect[A]) Run(ctx context.Context) (A, bool) {
	if e.run == nil {
		var zero A
		return zero, false
	}
	return e.run(ctx)
}
