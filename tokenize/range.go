// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokenize

import "fmt"

// Range is a non-owning view of the contiguous positions [begin, end) of an
// immutable backing slice.
//
// A range may extend one position past the backing slice. That position is
// the end-of-source marker: it has no element and always counts as a
// delimiter for a [Splitter].
//
// Ranges compare positionally: two ranges are equal when both bounds are
// equal. Comparing ranges drawn from different backing slices is
// meaningless. The zero Range is the null range, which is used only as a
// placeholder and must not be consumed.
type Range[E any] struct {
	src        []E
	begin, end int
	valid      bool
}

// Of returns the range covering all of src.
func Of[E any](src []E) Range[E] {
	return Range[E]{src: src, begin: 0, end: len(src), valid: true}
}

// Terminated returns the range covering all of src followed by the
// end-of-source marker.
func Terminated[E any](src []E) Range[E] {
	return Range[E]{src: src, begin: 0, end: len(src) + 1, valid: true}
}

// Null returns the null range.
func Null[E any]() Range[E] { return Range[E]{} }

// IsNull reports whether r is the null range.
func (r Range[E]) IsNull() bool { return !r.valid }

// Begin returns the position of the first element.
func (r Range[E]) Begin() int { return r.begin }

// End returns the position one past the last element.
func (r Range[E]) End() int { return r.end }

// Len returns the number of elements in r.
func (r Range[E]) Len() int { return r.end - r.begin }

// Empty reports whether r has no elements.
func (r Range[E]) Empty() bool { return r.begin == r.end }

// Elems returns the elements of r as a sub-slice of the backing slice.
// The end-of-source marker is not included. The result shares storage with
// the backing slice and must not be modified.
func (r Range[E]) Elems() []E {
	b, e := min(r.begin, len(r.src)), min(r.end, len(r.src))
	return r.src[b:e:e]
}

// Slice returns the sub-range [begin, end) in absolute positions.
// It panics if the bounds are outside r.
func (r Range[E]) Slice(begin, end int) Range[E] {
	if begin < r.begin || end > r.end || begin > end {
		panic(fmt.Sprintf("tokenize: slice [%d:%d] out of range [%d:%d]", begin, end, r.begin, r.end))
	}
	return Range[E]{src: r.src, begin: begin, end: end, valid: true}
}

// Equal reports whether r and other delimit the same positions.
// The null range equals only the null range.
func (r Range[E]) Equal(other Range[E]) bool {
	if r.valid != other.valid {
		return false
	}
	return r.begin == other.begin && r.end == other.end
}

// Text renders a rune or byte range as a string.
func Text[E rune | byte](r Range[E]) string {
	if r.IsNull() {
		return ""
	}
	switch s := any(r.Elems()).(type) {
	case []rune:
		return string(s)
	case []byte:
		return string(s)
	}
	return ""
}

// String implements fmt.Stringer.
func (r Range[E]) String() string {
	if !r.valid {
		return "[null]"
	}
	return fmt.Sprintf("[%d:%d]", r.begin, r.end)
}
