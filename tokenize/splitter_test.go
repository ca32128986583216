// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokenize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/stateiter/tokenize"
)

func TestSplitterApply(t *testing.T) {
	src := []rune("  ab, cd")
	sp := tokenize.NewSplitter(tokenize.NotAlnum)

	span, rest := sp.Apply(tokenize.Of(src))
	assert.Equal(t, "ab", tokenize.Text(span))
	assert.Equal(t, 2, span.Begin())
	assert.Equal(t, 4, span.End())
	assert.Equal(t, 4, rest.Begin())
	assert.Equal(t, len(src), rest.End())

	span, rest = sp.Apply(rest)
	assert.Equal(t, "cd", tokenize.Text(span))
	assert.True(t, rest.Empty())
	assert.Equal(t, len(src), rest.Begin())
}

func TestSplitterTerminal(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"all delimiters", "...,,,"},
		{"spaces", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []rune(tt.text)
			r := tokenize.Of(src)
			span, rest := tokenize.NewSplitter(tokenize.NotAlnum).Apply(r)
			assert.True(t, span.Empty())
			assert.Equal(t, r.End(), span.Begin())
			assert.True(t, span.Equal(rest), "span and rest should collapse to the end position")
		})
	}
}

func TestSplitterFixedPoint(t *testing.T) {
	src := []rune("word")
	sp := tokenize.NewSplitter(tokenize.NotAlnum)
	terminal := tokenize.Of(src).Slice(len(src), len(src))

	span, rest := sp.Apply(terminal)
	assert.True(t, rest.Equal(terminal))
	assert.True(t, span.Equal(terminal))

	_, again := sp.Apply(rest)
	assert.True(t, again.Equal(terminal))
}

func TestSplitterEndOfSourceMarker(t *testing.T) {
	src := []rune("ab")
	sp := tokenize.NewSplitter(tokenize.NotAlnum)

	span, rest := sp.Apply(tokenize.Terminated(src))
	assert.Equal(t, "ab", tokenize.Text(span))
	assert.Equal(t, 2, rest.Begin())
	assert.Equal(t, 3, rest.End())

	span, rest = sp.Apply(rest)
	assert.True(t, span.Empty())
	assert.Equal(t, 3, span.Begin())
	assert.True(t, span.Equal(rest))
}

func TestSplitterCustomPredicate(t *testing.T) {
	src := []byte("k1=v1;k2=v2")
	sp := tokenize.NewSplitter(func(b byte) bool { return b == ';' })

	span, rest := sp.Apply(tokenize.Of(src))
	assert.Equal(t, "k1=v1", tokenize.Text(span))
	span, _ = sp.Apply(rest)
	assert.Equal(t, "k2=v2", tokenize.Text(span))
}

func TestSplitterNilPredicate(t *testing.T) {
	require.PanicsWithValue(t, "tokenize: nil delimiter predicate", func() {
		tokenize.NewSplitter[rune](nil)
	})
}

func TestSplitterPartition(t *testing.T) {
	texts := []string{
		"This text.",
		"a b  c",
		"  leading and trailing  ",
		"...,,,",
		"",
		"héllo, wörld 42",
	}
	sp := tokenize.NewSplitter(tokenize.NotAlnum)
	for _, text := range texts {
		src := []rune(text)
		state := tokenize.Terminated(src)
		for steps := 0; ; steps++ {
			require.LessOrEqual(t, steps, len(src)+2, "no termination for %q", text)

			span, rest := sp.Apply(state)
			// skipped prefix + span + rest reconstructs the previous state
			require.LessOrEqual(t, state.Begin(), span.Begin())
			require.Equal(t, span.End(), rest.Begin())
			require.Equal(t, state.End(), rest.End())
			for i := state.Begin(); i < min(span.Begin(), len(src)); i++ {
				assert.True(t, tokenize.NotAlnum(src[i]), "dropped non-delimiter %q in %q", src[i], text)
			}
			for _, r := range span.Elems() {
				assert.False(t, tokenize.NotAlnum(r), "delimiter %q inside token of %q", r, text)
			}
			if rest.Equal(state) {
				break
			}
			state = rest
		}
	}
}
