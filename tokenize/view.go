// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokenize

import (
	"iter"

	"code.hybscloud.com/stateiter"
)

// Iterator is the cursor type produced by a [TokensView].
type Iterator[E any] = stateiter.Iterator[Splitter[E], Range[E], Range[E]]

// TokensView provides the tokens of a range as a restartable sequence.
//
// The view seeds its iterators with the whole input followed by the
// end-of-source marker, so the terminal state is the empty range just past
// the input and a token running up to the end of the input is still
// produced.
type TokensView[E any] struct {
	text Range[E]
	view stateiter.View[Splitter[E], Range[E], Range[E]]
}

// NewTokensView returns the tokens view of src delimited by isDelimiter.
// src must not be modified while the view or its iterators are in use.
func NewTokensView[E any](src []E, isDelimiter Predicate[E]) TokensView[E] {
	text := Terminated(src)
	end := text.Slice(text.End(), text.End())
	return TokensView[E]{
		text: text,
		view: stateiter.NewEquatableView(NewSplitter(isDelimiter), text, end, Null[E]()),
	}
}

// Words returns the tokens view of text split on runes that are neither
// letters nor digits.
func Words(text string) TokensView[rune] {
	return NewTokensView([]rune(text), NotAlnum)
}

// Begin returns an iterator at the first token.
func (v TokensView[E]) Begin() *Iterator[E] { return v.view.Begin() }

// End returns the iterator at the terminal state.
// It is only meant to be compared with; its value is the null range.
func (v TokensView[E]) End() *Iterator[E] { return v.view.End() }

// All returns the sequence of tokens. Each call starts over.
func (v TokensView[E]) All() iter.Seq[Range[E]] { return v.view.All() }

// Tokens returns all tokens.
func (v TokensView[E]) Tokens() []Range[E] { return v.view.Collect() }

// Strings renders the tokens of a rune or byte view as strings.
func Strings[E rune | byte](v TokensView[E]) []string {
	out := make([]string, 0)
	for tok := range v.All() {
		out = append(out, Text(tok))
	}
	return out
}
