// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stateiter

// Transition is the interface for state functions f : S -> (R, S).
// Apply maps the current state to the produced result and the next state.
//
// Implementations are expected to be pure: the same state always yields
// the same (result, state) pair. The Iterator never inspects the state
// beyond comparing it for equality.
type Transition[S, R any] interface {
	Apply(s S) (R, S)
}

// Equatable is the constraint for states that define their own equality.
// Use it with [NewEquatable] when S is not comparable with ==, e.g. when
// it carries a slice. Equal must be an equivalence relation.
type Equatable[S any] interface {
	Equal(other S) bool
}

// Func adapts an ordinary function to a [Transition].
type Func[S, R any] func(s S) (R, S)

// Apply implements [Transition].
func (f Func[S, R]) Apply(s S) (R, S) { return f(s) }

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PairFunc adapts a function returning a [Pair] of (result, state) to a
// [Transition].
type PairFunc[S, R any] func(s S) Pair[R, S]

// Apply implements [Transition].
func (f PairFunc[S, R]) Apply(s S) (R, S) {
	p := f(s)
	return p.Fst, p.Snd
}

// equalComparable compares with the built-in operator.
// Named generic functions produce a static function value per instantiation,
// so storing one in an Iterator does not allocate.
func equalComparable[S comparable](a, b S) bool { return a == b }

// equalMethod compares through [Equatable.Equal].
func equalMethod[S Equatable[S]](a, b S) bool { return a.Equal(b) }
