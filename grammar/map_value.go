package grammar

import (
	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

type mapValue[T, V, W any] struct {
	inner Grammar[T, V]
	f     func(V) W
}

// MapValue runs inner and, on success, transforms its value with f.
// A non-match passes through unchanged.
func MapValue[T, V, W any](inner Grammar[T, V], f func(V) W) Grammar[T, W] {
	return mapValue[T, V, W]{inner: inner, f: f}
}

func (g mapValue[T, V, W]) Test(s stream.Stream[T]) presult.Result[W] {
	r := AdvanceIfMatches(g.inner, s)
	return presult.Map(r, g.f)
}
