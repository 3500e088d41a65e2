// Package lex implements a priority-driven tokenizer: a fixed, ordered set
// of token descriptors tried against a character source, with the
// highest-priority match winning and ties broken by declaration order.
package lex

import (
	"github.com/wrenfold/parsec/chars"
	"github.com/wrenfold/parsec/presult"
)

// Descriptor recognizes a prefix of a character source and produces a
// token. Priority is consulted only when more than one descriptor
// matches at the same position; the highest priority wins, with earlier
// declaration order winning ties.
type Descriptor[T any] interface {
	Priority() int
	ParseFirstToken(v *chars.View) presult.Result[T]
}

type funcDescriptor[T any] struct {
	priority int
	parse    func(v *chars.View) presult.Result[T]
}

func (d funcDescriptor[T]) Priority() int { return d.priority }

func (d funcDescriptor[T]) ParseFirstToken(v *chars.View) presult.Result[T] {
	return d.parse(v)
}

// Func builds a Descriptor from an arbitrary matcher function and an
// explicit priority.
func Func[T any](priority int, parse func(v *chars.View) presult.Result[T]) Descriptor[T] {
	return funcDescriptor[T]{priority: priority, parse: parse}
}

// Literal matches a single fixed string, producing tok on a match. Its
// default priority is len(s), so longer fixed strings naturally outrank
// shorter ones sharing a prefix (e.g. "==" over "=").
func Literal[T any](s string, tok T) Descriptor[T] {
	return LiteralWithPriority(s, tok, len(s))
}

// LiteralWithPriority is Literal with an explicit priority, for callers
// that need to override the length-based default.
func LiteralWithPriority[T any](s string, tok T, priority int) Descriptor[T] {
	return funcDescriptor[T]{
		priority: priority,
		parse: func(v *chars.View) presult.Result[T] {
			n, err := v.Expect(s)
			if err != nil {
				return presult.Err[T](ErrNoMatch)
			}
			return presult.Ok(tok, n)
		},
	}
}

// MultiLiteral matches whichever of forms appears first, all producing
// the same token kind, at a single explicit priority.
func MultiLiteral[T any](priority int, tok T, forms ...string) Descriptor[T] {
	return funcDescriptor[T]{
		priority: priority,
		parse: func(v *chars.View) presult.Result[T] {
			for _, s := range forms {
				if n, err := v.Expect(s); err == nil {
					return presult.Ok(tok, n)
				}
			}
			return presult.Err[T](ErrNoMatch)
		},
	}
}
