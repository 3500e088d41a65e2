package grammar

import (
	"fmt"

	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// Pair is the value produced by Seq2: the results of its two children
// in order.
type Pair[V1, V2 any] struct {
	First  V1
	Second V2
}

// Triple is the value produced by Seq3.
type Triple[V1, V2, V3 any] struct {
	First  V1
	Second V2
	Third  V3
}

// SequenceError reports which child of a sequence failed, by its
// zero-based position, and why.
type SequenceError struct {
	Index int
	Cause error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("grammar: sequence element %d: %v", e.Index, e.Cause)
}

func (e *SequenceError) Unwrap() error { return e.Cause }

type seq2[T, V1, V2 any] struct {
	a Grammar[T, V1]
	b Grammar[T, V2]
}

// Seq2 matches a then b in order, producing a Pair of their values.
func Seq2[T, V1, V2 any](a Grammar[T, V1], b Grammar[T, V2]) Grammar[T, Pair[V1, V2]] {
	return seq2[T, V1, V2]{a: a, b: b}
}

func (g seq2[T, V1, V2]) Test(s stream.Stream[T]) presult.Result[Pair[V1, V2]] {
	start := s.Head()
	ra := AdvanceIfMatches(g.a, s)
	if ra.IsError() {
		return presult.Err[Pair[V1, V2]](&SequenceError{Index: 0, Cause: ra.Err()})
	}
	rb := AdvanceIfMatches(g.b, s)
	if rb.IsError() {
		s.SetHead(start)
		return presult.Err[Pair[V1, V2]](&SequenceError{Index: 1, Cause: rb.Err()})
	}
	return presult.Ok(Pair[V1, V2]{First: ra.Value(), Second: rb.Value()}, ra.Consumed()+rb.Consumed())
}

type seq3[T, V1, V2, V3 any] struct {
	a Grammar[T, V1]
	b Grammar[T, V2]
	c Grammar[T, V3]
}

// Seq3 matches a, then b, then c in order, producing a Triple.
func Seq3[T, V1, V2, V3 any](a Grammar[T, V1], b Grammar[T, V2], c Grammar[T, V3]) Grammar[T, Triple[V1, V2, V3]] {
	return seq3[T, V1, V2, V3]{a: a, b: b, c: c}
}

func (g seq3[T, V1, V2, V3]) Test(s stream.Stream[T]) presult.Result[Triple[V1, V2, V3]] {
	start := s.Head()
	ra := AdvanceIfMatches(g.a, s)
	if ra.IsError() {
		return presult.Err[Triple[V1, V2, V3]](&SequenceError{Index: 0, Cause: ra.Err()})
	}
	rb := AdvanceIfMatches(g.b, s)
	if rb.IsError() {
		s.SetHead(start)
		return presult.Err[Triple[V1, V2, V3]](&SequenceError{Index: 1, Cause: rb.Err()})
	}
	rc := AdvanceIfMatches(g.c, s)
	if rc.IsError() {
		s.SetHead(start)
		return presult.Err[Triple[V1, V2, V3]](&SequenceError{Index: 2, Cause: rc.Err()})
	}
	total := ra.Consumed() + rb.Consumed() + rc.Consumed()
	return presult.Ok(Triple[V1, V2, V3]{First: ra.Value(), Second: rb.Value(), Third: rc.Value()}, total)
}

type sequenceAll[T, V any] struct {
	children []Grammar[T, V]
}

// SequenceAll matches every child, in order, all producing the same
// value type V, and returns their values as a slice.
func SequenceAll[T, V any](children ...Grammar[T, V]) Grammar[T, []V] {
	return sequenceAll[T, V]{children: children}
}

func (g sequenceAll[T, V]) Test(s stream.Stream[T]) presult.Result[[]V] {
	start := s.Head()
	values := make([]V, 0, len(g.children))
	consumed := 0
	for i, child := range g.children {
		r := AdvanceIfMatches(child, s)
		if r.IsError() {
			s.SetHead(start)
			return presult.Err[[]V](&SequenceError{Index: i, Cause: r.Err()})
		}
		values = append(values, r.Value())
		consumed += r.Consumed()
	}
	return presult.Ok(values, consumed)
}
