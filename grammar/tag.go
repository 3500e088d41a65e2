package grammar

import (
	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// Tag wraps inner without changing its parsing behavior at all; Marker
// exists purely as a compile-time discriminator, never referenced at
// runtime, so that two grammars producing the same V can still be
// distinguished by the Go type system (e.g. a selection between
// differently-tagged wrappers of the same underlying value type).
type Tag[T, V, Marker any] struct {
	inner Grammar[T, V]
}

// NewTag tags inner with Marker.
func NewTag[Marker, T, V any](inner Grammar[T, V]) Tag[T, V, Marker] {
	return Tag[T, V, Marker]{inner: inner}
}

func (g Tag[T, V, Marker]) Test(s stream.Stream[T]) presult.Result[V] {
	return g.inner.Test(s)
}
