// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokenize

import (
	"strings"
	"unicode"
)

// Predicate reports whether an element is a token delimiter.
type Predicate[E any] func(e E) bool

// NotAlnum treats every rune that is neither a letter nor a digit as a
// delimiter.
func NotAlnum(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// NotASCIIAlnum treats every rune outside [A-Za-z0-9] as a delimiter,
// matching the C locale's isalnum.
func NotASCIIAlnum(r rune) bool {
	return !('A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9')
}

// Space treats white space as the only delimiter.
func Space(r rune) bool { return unicode.IsSpace(r) }

// Punct treats white space and punctuation as delimiters.
func Punct(r rune) bool { return unicode.IsSpace(r) || unicode.IsPunct(r) }

// AnyOf treats each rune of chars as a delimiter.
func AnyOf(chars string) Predicate[rune] {
	return func(r rune) bool { return strings.ContainsRune(chars, r) }
}

// Not inverts a predicate.
func Not[E any](p Predicate[E]) Predicate[E] {
	return func(e E) bool { return !p(e) }
}
