// Package task implements the kelvin task lifecycle.
//
// # States
//
// A task is always in exactly one of four states:
//
//   - Frozen: deferred until its thaw date. A Frozen task always carries a
//     thaw date.
//   - Thawing: the thaw date has arrived but nobody has acted on the task
//     yet. Only the sweep produces this state.
//   - Active: ready to work on. The initial state for tasks created without
//     a thaw date.
//   - Done: completed, reversible via Cool.
//
// # Transitions
//
//	Frozen  --sweep (today >= thaw date)--> Thawing
//	Frozen  --Warm--> Active    Frozen --Burn--> Done
//	Thawing --Warm--> Active
//	Active  --Burn--> Done
//	Done    --Cool--> Active
//	any     --Freeze--> Frozen
//
// Warm and Cool clear the thaw date; Freeze sets it; the sweep and Burn
// leave it untouched. Every other (operation, state) pair fails with a
// TransitionError.
//
// # Sweep
//
// Sweep must run before any code inspects or mutates the collection, so the
// states a command sees are current as of today. It is idempotent: a second
// run on the same day changes nothing.
package task
