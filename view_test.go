// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stateiter_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/stateiter"
)

// digits peels the lowest decimal digit off the state.
var digits = stateiter.Func[int, int](func(s int) (int, int) {
	return s % 10, s / 10
})

func TestViewBeginAdvancedOnce(t *testing.T) {
	v := stateiter.NewView(digits, 1234, 0, -1)
	it := v.Begin()
	if got := it.Value(); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if got := it.State(); got != 123 {
		t.Fatalf("got state %d, want 123", got)
	}
}

func TestViewEnd(t *testing.T) {
	v := stateiter.NewView(digits, 1234, 0, -1)
	end := v.End()
	if got := end.State(); got != 0 {
		t.Fatalf("got state %d, want 0", got)
	}
	if got := end.Value(); got != -1 {
		t.Fatalf("got %d, want placeholder -1", got)
	}
}

func TestViewManualLoop(t *testing.T) {
	// digits yields the last digit together with the terminal state, so a
	// leading sentinel digit 1 keeps every real digit visible.
	v := stateiter.NewView(digits, 1987, 0, -1)
	got := []int{}
	for it, end := v.Begin(), v.End(); !it.Equal(end); it.Next() {
		got = append(got, it.Value())
	}
	if want := []int{7, 8, 9}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestViewAllRestartable(t *testing.T) {
	v := stateiter.NewView(digits, 1987, 0, -1)
	first := slices.Collect(v.All())
	second := v.Collect()
	if !slices.Equal(first, second) {
		t.Fatalf("restart mismatch: %v vs %v", first, second)
	}
	if want := []int{7, 8, 9}; !slices.Equal(first, want) {
		t.Fatalf("got %v, want %v", first, want)
	}
}

func TestViewImmediateTerminal(t *testing.T) {
	v := stateiter.NewView(digits, 5, 0, -1)
	if !v.Begin().Equal(v.End()) {
		t.Fatal("first advance should reach the terminal state")
	}
	if got := v.Collect(); len(got) != 0 {
		t.Fatalf("got %v, want no results", got)
	}
}

func TestViewEquatable(t *testing.T) {
	calls := 0
	v := stateiter.NewEquatableView(shrink{calls: &calls}, interval{lo: 2, hi: 6}, interval{lo: 6, hi: 6}, 0)
	if want := []int{2, 3, 4}; !slices.Equal(v.Collect(), want) {
		t.Fatalf("got %v, want %v", v.Collect(), want)
	}
}

func TestViewIndependentBegins(t *testing.T) {
	v := stateiter.NewView(countdown, 5, 0, 0)
	a, b := v.Begin(), v.Begin()
	a.Next().Next()
	if got := b.Value(); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
	if got := a.Value(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
