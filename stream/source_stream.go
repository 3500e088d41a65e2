package stream

import (
	"github.com/wrenfold/parsec/chars"
	"github.com/wrenfold/parsec/lex"
)

// SourceStream is a token stream that lazily re-tokenizes from a
// character source on every Peek/Advance. Its Location is the
// underlying character source's Location.
type SourceStream[T any] struct {
	src chars.Source
	tz  *lex.Tokenizer[T]
}

// NewSourceStream builds a token stream over src using tz to produce
// each token.
func NewSourceStream[T any](src chars.Source, tz *lex.Tokenizer[T]) *SourceStream[T] {
	return &SourceStream[T]{src: src, tz: tz}
}

func (s *SourceStream[T]) AtEnd() bool { return s.src.AtEnd() }

func (s *SourceStream[T]) Head() Location { return s.src.Head() }

func (s *SourceStream[T]) SetHead(loc Location) { s.src.SetHead(loc.(chars.Location)) }

func (s *SourceStream[T]) Peek() (T, error) {
	v := chars.NewView(s.src)
	defer v.Close()
	r := s.tz.ParseFirstToken(v)
	if r.IsError() {
		var zero T
		return zero, ErrNoToken
	}
	return r.Value(), nil
}

func (s *SourceStream[T]) Advance() (T, error) {
	v := chars.NewView(s.src)
	r := s.tz.ParseFirstToken(v)
	if r.IsError() {
		v.Close()
		var zero T
		return zero, ErrNoToken
	}
	consumed := r.Consumed()
	v.Close()
	s.src.AdvanceHead(consumed)
	return r.Value(), nil
}
