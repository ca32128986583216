// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stateiter

import (
	"iter"
	"slices"
)

// View presents a transition as a restartable sequence bounded by a
// beginning and an ending [Iterator].
//
// Begin starts from the initial state and is advanced once, so its first
// value is a real result and never the placeholder. End sits at the
// terminal state and is used only for comparison.
type View[T Transition[S, R], S, R any] struct {
	transition  T
	initial     S
	terminal    S
	placeholder R
	newIter     func(T, S, R) *Iterator[T, S, R]
}

// NewView makes a view over a transition with a comparable state.
func NewView[T Transition[S, R], S comparable, R any](transition T, initial, terminal S, placeholder R) View[T, S, R] {
	return View[T, S, R]{
		transition:  transition,
		initial:     initial,
		terminal:    terminal,
		placeholder: placeholder,
		newIter:     New[T, S, R],
	}
}

// NewEquatableView makes a view over a transition with an [Equatable] state.
func NewEquatableView[T Transition[S, R], S Equatable[S], R any](transition T, initial, terminal S, placeholder R) View[T, S, R] {
	return View[T, S, R]{
		transition:  transition,
		initial:     initial,
		terminal:    terminal,
		placeholder: placeholder,
		newIter:     NewEquatable[T, S, R],
	}
}

// Begin returns a fresh iterator at the first result.
func (v View[T, S, R]) Begin() *Iterator[T, S, R] {
	return v.newIter(v.transition, v.initial, v.placeholder).Next()
}

// End returns an iterator at the terminal state.
// Its value is the placeholder and must not be consumed.
func (v View[T, S, R]) End() *Iterator[T, S, R] {
	return v.newIter(v.transition, v.terminal, v.placeholder)
}

// All returns the sequence of results from Begin to End.
// Each call to the returned sequence starts over from the initial state.
func (v View[T, S, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for r := range v.Begin().Until(v.End()) {
			if !yield(r) {
				return
			}
		}
	}
}

// Collect returns all results from Begin to End.
func (v View[T, S, R]) Collect() []R {
	return slices.Collect(v.All())
}
