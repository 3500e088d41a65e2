package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfold/parsec/chars"
	"github.com/wrenfold/parsec/lex"
)

func digitsTokenizer() *lex.Tokenizer[string] {
	return lex.NewTokenizer(
		lex.Literal("+", "+"),
		lex.Literal("1", "1"),
		lex.Literal("2", "2"),
	)
}

func TestSourceStreamPeekDoesNotAdvance(t *testing.T) {
	src := chars.NewStringSource("1+2")
	s := NewSourceStream(src, digitsTokenizer())

	tok, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "1", tok)
	tok, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "1", tok)
}

func TestSourceStreamAdvanceConsumesTokens(t *testing.T) {
	src := chars.NewStringSource("1+2")
	s := NewSourceStream(src, digitsTokenizer())

	var got []string
	for !s.AtEnd() {
		tok, err := s.Advance()
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, []string{"1", "+", "2"}, got)
}

func TestSourceStreamViewRestoresOnClose(t *testing.T) {
	src := chars.NewStringSource("1+2")
	s := NewSourceStream(src, digitsTokenizer())

	start := s.Head()
	func() {
		v := NewView[string](s)
		defer v.Close()
		v.Advance()
		v.Advance()
	}()
	assert.Equal(t, start, s.Head())
}

func TestSourceStreamNoTokenAtEnd(t *testing.T) {
	src := chars.NewStringSource("")
	s := NewSourceStream(src, digitsTokenizer())
	assert.True(t, s.AtEnd())
	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrNoToken)
}
