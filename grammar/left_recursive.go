package grammar

import (
	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// Tree is a left-leaning binary tree of V elements joined by S
// separators, the value produced by LeftRecursive. The base case is a
// single right-hand element with no left subtree.
type Tree[V, S any] struct {
	hasLeft   bool
	left      *Tree[V, S]
	separator S
	right     V
}

// HasLeft reports whether this node has a left subtree, i.e. whether
// it is the base case (a single element) or a join.
func (t *Tree[V, S]) HasLeft() bool { return t.hasLeft }

// Left returns the left subtree. Only meaningful when HasLeft is true.
func (t *Tree[V, S]) Left() *Tree[V, S] { return t.left }

// Separator returns the separator joining Left and Right. Only
// meaningful when HasLeft is true.
func (t *Tree[V, S]) Separator() S { return t.separator }

// Right returns this node's right-hand element. In the base case this
// is the tree's only element.
func (t *Tree[V, S]) Right() V { return t.right }

type leftRecursive[T, V, S any] struct {
	element   Grammar[T, V]
	separator Grammar[T, S]
}

// LeftRecursive matches one element, then zero or more (separator,
// element) pairs, folding them left-associatively into a Tree.
func LeftRecursive[T, V, S any](element Grammar[T, V], separator Grammar[T, S]) Grammar[T, *Tree[V, S]] {
	return leftRecursive[T, V, S]{element: element, separator: separator}
}

func (g leftRecursive[T, V, S]) Test(s stream.Stream[T]) presult.Result[*Tree[V, S]] {
	first := AdvanceIfMatches(g.element, s)
	if first.IsError() {
		return presult.Err[*Tree[V, S]](first.Err())
	}
	tree := &Tree[V, S]{right: first.Value()}
	consumed := first.Consumed()

	for {
		sepAndRight := Seq2[T, S, V](g.separator, g.element)
		r := AdvanceIfMatches(sepAndRight, s)
		if r.IsError() {
			break
		}
		tree = &Tree[V, S]{
			hasLeft:   true,
			left:      tree,
			separator: r.Value().First,
			right:     r.Value().Second,
		}
		consumed += r.Consumed()
	}
	return presult.Ok(tree, consumed)
}
