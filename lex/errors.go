package lex

import "errors"

// ErrNoMatch is returned by a Descriptor's ParseFirstToken when it does
// not recognize anything at the cursor. It never escapes a Tokenizer
// call on its own; Tokenizer.ParseFirstToken aggregates it into
// ErrNoMatchingToken.
var ErrNoMatch = errors.New("lex: descriptor did not match")

// ErrNoMatchingToken is returned by Tokenizer.ParseFirstToken when no
// descriptor matches the cursor position at all.
var ErrNoMatchingToken = errors.New("lex: no descriptor matched")
