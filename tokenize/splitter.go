// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokenize

// Splitter is the state function that tokenizes a range.
//
// The state is the remaining range to be split and the result is the next
// token. Tokens are delimited by elements for which IsDelimiter holds.
type Splitter[E any] struct {
	IsDelimiter Predicate[E]
}

// NewSplitter returns a Splitter for the given delimiter predicate.
// It panics if isDelimiter is nil.
func NewSplitter[E any](isDelimiter Predicate[E]) Splitter[E] {
	if isDelimiter == nil {
		panic("tokenize: nil delimiter predicate")
	}
	return Splitter[E]{IsDelimiter: isDelimiter}
}

// Apply splits r into the next token and the remainder.
//
// Leading delimiters are dropped. The token is the maximal following run of
// non-delimiters and the remainder starts right after it. When no
// non-delimiter is left, the token and the remainder are both the empty
// range at r.End(), and applying Apply to that remainder yields it again.
func (sp Splitter[E]) Apply(r Range[E]) (Range[E], Range[E]) {
	b, e := r.begin, r.end
	for b != e && sp.delimiterAt(r.src, b) {
		b++
	}
	i := b
	for i != e && !sp.delimiterAt(r.src, i) {
		i++
	}
	return Range[E]{src: r.src, begin: b, end: i, valid: true},
		Range[E]{src: r.src, begin: i, end: e, valid: true}
}

// delimiterAt reports whether position i of src is a delimiter.
// The end-of-source marker always is.
func (sp Splitter[E]) delimiterAt(src []E, i int) bool {
	return i >= len(src) || sp.IsDelimiter(src[i])
}
