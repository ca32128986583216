// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stateiter

// Monad operations for state functions.
//
// A Func[S, A] is the state monad: Iterator.Next is Bind with a fixed
// continuation, re-applying the same function to each new state.
// Minimal definition: Return (unit) and Bind. Map and Then are derived
// operations kept to avoid the intermediate Return closure.

// Return lifts a pure value into a state function that leaves the state
// unchanged.
func Return[S, A any](a A) Func[S, A] {
	return func(s S) (A, S) {
		return a, s
	}
}

// Bind sequences two state functions (monadic bind).
// It runs m, then passes the result to f and runs the returned function on
// the state m produced.
func Bind[S, A, B any](m Func[S, A], f func(A) Func[S, B]) Func[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a)(s1)
	}
}

// Map applies a pure function to the result of a state function.
func Map[S, A, B any](m Func[S, A], f func(A) B) Func[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a), s1
	}
}

// Then sequences two state functions, discarding the first result.
func Then[S, A, B any](m Func[S, A], n Func[S, B]) Func[S, B] {
	return func(s S) (B, S) {
		_, s1 := m(s)
		return n(s1)
	}
}
