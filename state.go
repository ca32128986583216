// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stateiter

// State access as state functions.

// Get yields the current state and leaves it unchanged.
func Get[S any]() Func[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Put replaces the state with s.
func Put[S any](s S) Func[S, struct{}] {
	return func(S) (struct{}, S) {
		return struct{}{}, s
	}
}

// Modify applies f to the state and yields the new state.
func Modify[S any](f func(S) S) Func[S, S] {
	return func(s S) (S, S) {
		s1 := f(s)
		return s1, s1
	}
}

// RunState applies a transition once and returns both the result and the
// next state.
func RunState[S, R any](t Transition[S, R], initial S) (R, S) {
	return t.Apply(initial)
}

// EvalState applies a transition once and returns only the result.
func EvalState[S, R any](t Transition[S, R], initial S) R {
	r, _ := t.Apply(initial)
	return r
}

// ExecState applies a transition once and returns only the next state.
func ExecState[S, R any](t Transition[S, R], initial S) S {
	_, s := t.Apply(initial)
	return s
}
