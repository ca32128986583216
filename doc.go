// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stateiter turns a state function f : S -> (R, S) into a lazily
// produced, restartable sequence of R values.
//
// The core type [Iterator] holds the current result, the current state and
// the state function. Advancing the iterator applies the function to the
// current state and replaces both the result and the state. The state
// handling is abstracted away: consumers only pull values and compare
// iterators.
//
// # Design Philosophy
//
// stateiter provides:
//   - Compile-time structural constraints instead of a fixed base interface
//   - A single function that derives both the next result and the next state
//   - Termination by state equality, with no separate "has next" flag
//
// # Structural Constraints
//
//   - [Transition]: any type with Apply(S) (R, S)
//   - [Func]: plain function adapter for [Transition]
//   - [PairFunc]: adapter for functions returning a [Pair] of (result, state)
//   - [Equatable]: states that compare with an Equal method
//
// Copyability needs no constraint: results and states are stored by value.
// A triple (T, S, R) that does not satisfy the constraints is rejected at
// compile time.
//
// # Iterator
//
//   - [New]: Construct with a comparable state (compared with ==)
//   - [NewEquatable]: Construct with an [Equatable] state
//   - [Iterator.Next]: Apply the state function; returns the iterator
//   - [Iterator.Value]: Current result
//   - [Iterator.State]: Current state
//   - [Iterator.Equal]: State equality; results and functions are ignored
//   - [Iterator.Clone]: Independent copy of the cursor
//   - [Iterator.Until]: Range-over-func sequence up to a terminal iterator
//
// Equality compares only states, so a designated state value acts as an
// end-of-sequence sentinel independent of the result payload. A correct
// state function is a fixed point at its terminal state.
//
// # Views
//
// [View] pairs a beginning and an ending iterator over the same state
// function, the way a container exposes begin and end:
//
//   - [NewView], [NewEquatableView]: Construct from (f, initial, terminal, placeholder)
//   - [View.Begin]: Iterator at the initial state, advanced once
//   - [View.End]: Iterator at the terminal state, for comparison only
//   - [View.All], [View.Collect]: Restartable sequence of results
//
// # State Monad
//
// A [Func] is the state monad, and [Iterator.Next] is its bind with a fixed
// continuation. The monad operations compose state functions:
//
//   - [Return], [Bind]: Minimal monad operations
//   - [Map], [Then]: Derived operations
//   - [Get], [Put], [Modify]: State access
//   - [RunState], [EvalState], [ExecState]: Apply a transition once
//
// # Concurrency
//
// An [Iterator] is a single cursor mutated in place. Advancing one iterator
// from several goroutines is a data race; give each consumer its own
// iterator with [Iterator.Clone] or [View.Begin]. Independent iterators over
// the same immutable data are safe to use concurrently.
//
// # Example
//
//	// Fibonacci numbers: the state is the next pair, the result the current one.
//	fib := stateiter.Func[[2]int, int](func(s [2]int) (int, [2]int) {
//		return s[0], [2]int{s[1], s[0] + s[1]}
//	})
//	it := stateiter.New(fib, [2]int{0, 1}, 0)
//	for range 5 {
//		fmt.Println(it.Next().Value())
//	}
//	// 0 1 1 2 3
package stateiter
