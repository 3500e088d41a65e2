package lex

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/wrenfold/parsec/chars"
	"github.com/wrenfold/parsec/presult"
)

// Tokenizer is a fixed, ordered set of descriptors sharing a token type
// T. It is stateless: the same Tokenizer can be reused across any
// number of character sources.
type Tokenizer[T any] struct {
	descriptors []Descriptor[T]
}

// NewTokenizer builds a Tokenizer from descriptors in declaration
// order. Declaration order only matters as a tie-break between
// descriptors that match with equal priority.
func NewTokenizer[T any](descriptors ...Descriptor[T]) *Tokenizer[T] {
	return &Tokenizer[T]{descriptors: descriptors}
}

// ParseFirstToken tries every descriptor against v's current position
// and returns the highest-priority match, consuming exactly that much
// of v. Ties are broken in favor of the earlier-declared descriptor.
//
// Descriptors whose fixed priority cannot beat the best match found so
// far are skipped without being invoked at all -- priority is a
// constant of the descriptor, not of the input, so such a descriptor
// could at best tie an earlier winner, and ties already go to the
// earlier one. This is purely an optimization: skipping never changes
// which descriptor wins.
func (t *Tokenizer[T]) ParseFirstToken(v *chars.View) presult.Result[T] {
	var (
		best      presult.Result[T]
		bestPri   int
		haveMatch bool
		failures  *multierror.Error
	)

	for i, d := range t.descriptors {
		if haveMatch && d.Priority() <= bestPri {
			continue
		}
		r := chars.SubParse(v, func(sub *chars.View) presult.Result[T] {
			return d.ParseFirstToken(sub)
		})
		if r.IsError() {
			failures = multierror.Append(failures, fmt.Errorf("descriptor %d: %w", i, r.Err()))
			continue
		}
		if !haveMatch || d.Priority() > bestPri {
			best = r
			bestPri = d.Priority()
			haveMatch = true
		}
	}

	if !haveMatch {
		if failures != nil {
			return presult.Err[T](fmt.Errorf("%w: %s", ErrNoMatchingToken, failures.Error()))
		}
		return presult.Err[T](ErrNoMatchingToken)
	}
	v.AdvanceHead(best.Consumed())
	return best
}

// TokenizeAll runs the tokenizer repeatedly over src until it is
// exhausted, returning every token produced in order. It stops and
// returns the underlying error the first time no descriptor matches.
func TokenizeAll[T any](t *Tokenizer[T], src chars.Source) ([]T, error) {
	var tokens []T
	for !src.AtEnd() {
		v := chars.NewView(src)
		r := t.ParseFirstToken(v)
		v.Close()
		if r.IsError() {
			return tokens, r.Err()
		}
		src.AdvanceHead(r.Consumed())
		tokens = append(tokens, r.Value())
	}
	return tokens, nil
}
