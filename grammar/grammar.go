// Package grammar implements recursive-descent parser combinators over
// a stream.Stream[T]. Every combinator is a Grammar[T, V]; they compose
// by value (or, for recursive grammars, through Indirect) into larger
// grammars that all share the same uniform presult.Result carrier.
package grammar

import (
	"errors"

	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// ErrNonMatch is returned by a combinator that recognized the input
// was not for it, as opposed to recognizing its input and finding it
// malformed.
var ErrNonMatch = errors.New("grammar: no match")

// ErrNever documents that Optional's Test can never itself return an
// error: a non-match is folded into a present-but-absent Maybe. It
// exists so call sites that want to name Optional's error type have
// something to name; it is never actually returned.
var ErrNever = errors.New("grammar: unreachable")

// Grammar is the contract every combinator implements: given a token
// stream, attempt to recognize and consume a prefix of it, returning
// either a value and how many tokens were consumed, or an error.
//
// Implementations must never leave the stream in a partially-advanced
// state on a non-match: all speculative reads belong inside a
// stream.View that is closed (restoring the stream) before a failing
// Test returns.
type Grammar[T, V any] interface {
	Test(s stream.Stream[T]) presult.Result[V]
}

// Func adapts a plain function to the Grammar interface, for ad hoc
// combinators that don't warrant their own named type.
type Func[T, V any] func(s stream.Stream[T]) presult.Result[V]

func (f Func[T, V]) Test(s stream.Stream[T]) presult.Result[V] {
	return f(s)
}

// AdvanceIfMatches runs g against s and, on success, advances s past
// everything g consumed; on failure s is left untouched.
//
// Every Grammar's own Test method receives the stream it should read
// from already wrapped in a tentative view by its caller (ultimately
// AdvanceIfMatches or another combinator's own internal view), so
// Test itself never needs to open one just to stay speculative: it
// reads directly and, on non-match, simply returns an error without
// having committed anything, since nothing below this call has been
// told to commit yet.
//
// Because a stream.View restores its underlying stream on Close
// regardless of outcome (the same contract as chars.View), committing
// a successful match means replaying the consumed count on the real
// stream after the tentative attempt has already unwound.
func AdvanceIfMatches[T, V any](g Grammar[T, V], s stream.Stream[T]) presult.Result[V] {
	v := stream.NewView[T](s)
	r := g.Test(v)
	v.Close()
	if r.IsValue() {
		for i := 0; i < r.Consumed(); i++ {
			s.Advance()
		}
	}
	return r
}
