// Package state provides a generic unidirectional-data-flow store.
//
// # Overview
//
// A Store owns one state value and a reducer. Every change to the state goes
// through Send, which runs the reducer, publishes the new state to
// subscribers, and starts whatever Effect the reducer returned. Effects never
// touch the state; they hand a follow-up action back to the store, which
// dispatches it from its delivery loop.
//
// # Architecture
//
//	  view                       Store                         effect
//	┌────────┐  Send(action)  ┌─────────────┐   go run()   ┌────────────┐
//	│        │───────────────→│ reduce(&s,a)│─────────────→│ fetch, ... │
//	│        │                │ publish     │              └─────┬──────┘
//	│        │←───────────────│             │   mailbox          │
//	│ render │  Subscribe()   │ Run loop ←──┼────────────────────┘
//	└────────┘                └─────────────┘   Send(follow-up)
//
// # Core Types
//
// Effect:
//   - None: nothing to do
//   - Send(a): yield a immediately as the follow-up
//   - Task(name, fn): run fn and yield its result, if any
//
// Reducer:
//   - func(*S, A) Effect[A]
//   - Must only mutate the state it is given; must not block
//
// Store:
//   - Send dispatches synchronously under a mutex
//   - State returns a snapshot (copied via WithClone when configured)
//   - Subscribe returns a latest-wins channel of snapshots
//   - Run is the delivery loop for follow-up actions
//
// # Concurrency Model
//
// Reducer calls are serialized by the store mutex, so there is a single
// writer at any time no matter which goroutine calls Send. Effects run on
// their own goroutines. Their follow-up is queued and dispatched by Run, so
// it is always processed after the Send that started the effect has returned.
//
// In-flight effects are not cancelled when newer actions arrive. Cancelling
// the context passed to Run cancels the context of every running effect,
// waits for them to return, closes all subscriber channels, and drops any
// follow-up that had not been dispatched yet.
//
// # Observability
//
// WithLogger traces each dispatch and effect completion at debug level.
// WithMetrics counts actions and times effects (see package metrics).
package state
