package grammar

import (
	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// Maybe is the value produced by Optional: either the child's value,
// or nothing at all.
type Maybe[V any] struct {
	Present bool
	Value   V
}

type optional[T, V any] struct {
	inner Grammar[T, V]
}

// Optional matches inner if possible; if inner does not match,
// Optional itself still matches, consuming nothing and producing an
// absent Maybe. Optional's Test can therefore never fail; see
// ErrNever.
func Optional[T, V any](inner Grammar[T, V]) Grammar[T, Maybe[V]] {
	return optional[T, V]{inner: inner}
}

func (g optional[T, V]) Test(s stream.Stream[T]) presult.Result[Maybe[V]] {
	r := AdvanceIfMatches(g.inner, s)
	if r.IsError() {
		return presult.Ok(Maybe[V]{}, 0)
	}
	return presult.Ok(Maybe[V]{Present: true, Value: r.Value()}, r.Consumed())
}
