package grammar

import (
	"fmt"
	"strings"

	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// SelectionResult is the value produced by Selection: the winning
// child's value, plus which child won.
type SelectionResult[V any] struct {
	Value V
	Index int
}

// SelectionError aggregates the failure of every alternative tried by
// a Selection, in declaration order.
type SelectionError struct {
	Causes []error
}

func (e *SelectionError) Error() string {
	parts := make([]string, len(e.Causes))
	for i, c := range e.Causes {
		parts[i] = fmt.Sprintf("alternative %d: %v", i, c)
	}
	return "grammar: no alternative matched: " + strings.Join(parts, "; ")
}

type selection[T, V any] struct {
	children []Grammar[T, V]
}

// Selection tries each child in declaration order and returns the
// first one that matches. All children must share the value type V;
// the winner is identified by SelectionResult.Index.
func Selection[T, V any](children ...Grammar[T, V]) Grammar[T, SelectionResult[V]] {
	return selection[T, V]{children: children}
}

func (g selection[T, V]) Test(s stream.Stream[T]) presult.Result[SelectionResult[V]] {
	causes := make([]error, 0, len(g.children))
	for i, child := range g.children {
		r := AdvanceIfMatches(child, s)
		if r.IsValue() {
			return presult.Ok(SelectionResult[V]{Value: r.Value(), Index: i}, r.Consumed())
		}
		causes = append(causes, r.Err())
	}
	return presult.Err[SelectionResult[V]](&SelectionError{Causes: causes})
}

// Visit dispatches on a SelectionResult by its winning Index, calling
// cases[r.Index] with r.Value. It panics if Index is out of range for
// cases, which indicates a grammar/visitor mismatch rather than a
// parse failure.
func Visit[V, W any](r SelectionResult[V], cases ...func(V) W) W {
	return cases[r.Index](r.Value)
}
