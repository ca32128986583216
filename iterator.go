// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stateiter

import "iter"

// Iterator iterates over repeated applications of a state function
// f : S -> (R, S).
//
// Next applies the transition to the current state and replaces both the
// result and the state. Value extracts the result of the last application.
// Equality between two iterators compares only their states, so a designated
// terminal state acts as the end-of-sequence sentinel.
//
// An Iterator has exactly one cursor. It must not be advanced from multiple
// goroutines without external synchronization; use [Iterator.Clone] to give
// each consumer its own cursor.
type Iterator[T Transition[S, R], S, R any] struct {
	result     R
	state      S
	transition T
	equal      func(a, b S) bool
}

// New makes an iterator from a transition, an initial state and an initial
// result, comparing states with ==.
//
// The iterator is positioned before any application of the transition:
// Value returns initialResult until the first call to Next.
func New[T Transition[S, R], S comparable, R any](transition T, initialState S, initialResult R) *Iterator[T, S, R] {
	return &Iterator[T, S, R]{
		result:     initialResult,
		state:      initialState,
		transition: transition,
		equal:      equalComparable[S],
	}
}

// NewEquatable is like [New] for states compared with their Equal method.
func NewEquatable[T Transition[S, R], S Equatable[S], R any](transition T, initialState S, initialResult R) *Iterator[T, S, R] {
	return &Iterator[T, S, R]{
		result:     initialResult,
		state:      initialState,
		transition: transition,
		equal:      equalMethod[S],
	}
}

// Next applies the transition to the current state.
// The result and the state are replaced together. Next returns the receiver
// to allow chaining.
//
// Calling Next outside the domain of a partial transition is a
// precondition violation of that transition.
func (it *Iterator[T, S, R]) Next() *Iterator[T, S, R] {
	it.result, it.state = it.transition.Apply(it.state)
	return it
}

// Value returns the current result without advancing.
func (it *Iterator[T, S, R]) Value() R { return it.result }

// State returns the current state.
func (it *Iterator[T, S, R]) State() S { return it.state }

// Equal reports whether it and other are at equal states.
// Results and transitions are not compared.
func (it *Iterator[T, S, R]) Equal(other *Iterator[T, S, R]) bool {
	return it.equal(it.state, other.state)
}

// Clone returns an independent copy of the iterator.
// The copy advances independently of the receiver.
func (it *Iterator[T, S, R]) Clone() *Iterator[T, S, R] {
	c := *it
	return &c
}

// Until returns a sequence of the values produced from the current position
// until the iterator's state equals end's state.
//
// The current value is yielded first, then the iterator is advanced. The
// receiver is consumed: after the sequence stops it rests at the position
// where iteration ended. end is only compared, never advanced.
func (it *Iterator[T, S, R]) Until(end *Iterator[T, S, R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for ; !it.Equal(end); it.Next() {
			if !yield(it.result) {
				return
			}
		}
	}
}
