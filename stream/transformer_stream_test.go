package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfold/parsec/chars"
	"github.com/wrenfold/parsec/lex"
)

func spacedTokenizer() *lex.Tokenizer[string] {
	return lex.NewTokenizer(
		lex.Literal(" ", " "),
		lex.Literal("a", "a"),
		lex.Literal("b", "b"),
	)
}

// dropSpacesAndDouble drops space tokens and emits every other token
// twice, exercising a step that both filters (zero emissions) and fans
// out (multiple emissions per upstream token).
func dropSpacesAndDouble(read func() (string, error), peek func() (string, error), atEnd func() bool, emit func(string)) {
	tok, err := read()
	if err != nil {
		return
	}
	if tok == " " {
		return
	}
	emit(tok)
	emit(tok)
}

func TestTransformerStreamFanOutAndFilter(t *testing.T) {
	src := chars.NewStringSource("a b")
	upstream := NewSourceStream(src, spacedTokenizer())
	ts := NewTransformerStream[string](upstream, dropSpacesAndDouble)

	var got []string
	for !ts.AtEnd() {
		tok, err := ts.Advance()
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, []string{"a", "a", "b", "b"}, got)
}

func TestTransformerStreamCompositeLocationDistinguishesSubIndex(t *testing.T) {
	src := chars.NewStringSource("a")
	upstream := NewSourceStream(src, spacedTokenizer())
	ts := NewTransformerStream[string](upstream, dropSpacesAndDouble)

	first, err := ts.Advance()
	require.NoError(t, err)
	assert.Equal(t, "a", first)
	loc := ts.Head()
	cl, ok := loc.(CompositeLocation)
	require.True(t, ok)
	assert.Equal(t, 1, cl.SubIndex)

	second, err := ts.Advance()
	require.NoError(t, err)
	assert.Equal(t, "a", second)
}

func TestTransformerStreamSeekRerunsStep(t *testing.T) {
	src := chars.NewStringSource("a b")
	upstream := NewSourceStream(src, spacedTokenizer())
	ts := NewTransformerStream[string](upstream, dropSpacesAndDouble)

	// Consume both emissions of the "a" batch so the pending buffer is
	// exhausted; Head() now names the upstream position right after
	// "a" (the space), with SubIndex 0.
	_, _ = ts.Advance()
	_, _ = ts.Advance()
	mid := ts.Head()

	firstB, err := ts.Advance()
	require.NoError(t, err)
	assert.Equal(t, "b", firstB)

	ts.SetHead(mid)
	tok, err := ts.Advance()
	require.NoError(t, err)
	assert.Equal(t, "b", tok)
}
