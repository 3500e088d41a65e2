package grammar

import (
	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// SingleToken matches exactly one token satisfying pred, producing
// that token as its value.
type SingleToken[T any] struct {
	pred func(T) bool
}

// NewSingleToken builds a SingleToken combinator from a predicate.
func NewSingleToken[T any](pred func(T) bool) SingleToken[T] {
	return SingleToken[T]{pred: pred}
}

func (g SingleToken[T]) Test(s stream.Stream[T]) presult.Result[T] {
	if s.AtEnd() {
		return presult.Err[T](ErrNonMatch)
	}
	tok, err := s.Peek()
	if err != nil {
		return presult.Err[T](ErrNonMatch)
	}
	if !g.pred(tok) {
		return presult.Err[T](ErrNonMatch)
	}
	s.Advance()
	return presult.Ok(tok, 1)
}

// Exactly matches one token equal to want.
func Exactly[T comparable](want T) SingleToken[T] {
	return NewSingleToken(func(t T) bool { return t == want })
}
