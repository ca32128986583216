// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tokenize splits a sequence into delimiter-bounded tokens with a
// state function driven by [stateiter.Iterator].
//
// The state is the remaining [Range] and the result is the next token.
// [Splitter] drops leading delimiters, takes the maximal run of
// non-delimiters as the token and returns what follows as the new state.
// [TokensView] wraps the splitter into a begin/end pair of iterators:
//
//	v := tokenize.Words("This text.")
//	for tok := range v.All() {
//		fmt.Println(tokenize.Text(tok))
//	}
//	// This
//	// text
//
// Iteration stops when the iterator's remaining range equals the terminal
// state, the empty range at the end-of-source marker.
package tokenize
