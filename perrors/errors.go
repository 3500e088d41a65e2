// Package perrors provides the structured error hierarchy returned by
// a grammar's top-level driver: a BaseParserError carrying the failed
// alternative's cause and location, and an Errors aggregate for
// multi-error reporting.
package perrors

import (
	"fmt"
	"strings"
)

// ErrorOpts holds the data behind a parser error. One of Cause or
// Message should be set; if Cause is set, Message is ignored when
// rendering Error().
type ErrorOpts struct {
	ErrType  string
	Message  string
	Cause    error
	Location fmt.Stringer
}

// ParserError is implemented by every error this package produces.
type ParserError interface {
	Type() string
	Message() string
	Cause() error
	Location() fmt.Stringer
	Error() string
}

// BaseParserError is the simplest ParserError implementation.
type BaseParserError struct {
	errType  string
	message  string
	cause    error
	location fmt.Stringer
}

// NewParserError builds a BaseParserError from opts.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType:  opts.ErrType,
		message:  opts.Message,
		cause:    opts.Cause,
		location: opts.Location,
	}
}

func (e *BaseParserError) Error() string {
	msg := e.message
	if e.cause != nil {
		msg = e.cause.Error()
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	if e.location != nil {
		msg = fmt.Sprintf("%s (at %s)", msg, e.location)
	}
	return msg
}

// FriendlyErrorMessage renders e for display in a terminal. It builds
// on the Type/Message/Cause/Location accessors rather than the private
// fields directly, so any type embedding BaseParserError inherits the
// same rendering. cmd/parsec prints this in red rather than Error()'s
// plainer form.
func (e *BaseParserError) FriendlyErrorMessage() string {
	msg := e.Message()
	if cause := e.Cause(); cause != nil {
		msg = cause.Error()
	}
	if t := e.Type(); t != "" {
		msg = fmt.Sprintf("%s: %s", t, msg)
	}
	if loc := e.Location(); loc != nil {
		msg = fmt.Sprintf("%s\n  --> %s", msg, loc)
	}
	return msg
}

func (e *BaseParserError) Type() string { return e.errType }

func (e *BaseParserError) Message() string { return e.message }

func (e *BaseParserError) Cause() error { return e.cause }

func (e *BaseParserError) Unwrap() error { return e.cause }

func (e *BaseParserError) Location() fmt.Stringer { return e.location }

// SyntaxError is a BaseParserError whose Type is always "syntax error".
type SyntaxError struct {
	*BaseParserError
}

// NewSyntaxError builds a SyntaxError from opts, overriding ErrType.
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = "syntax error"
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

// Errors aggregates multiple ParserErrors behind a single error value.
type Errors struct {
	errs []ParserError
}

// NewErrors builds an Errors from errs, or returns a nil *Errors if
// errs is empty. A nil *Errors stored in an error interface value is
// not a nil error.
func NewErrors(errs []ParserError) *Errors {
	if len(errs) == 0 {
		return nil
	}
	return &Errors{errs: errs}
}

func (e *Errors) Error() string {
	first := e.First()
	if first == nil {
		return ""
	}
	if e.Count() == 1 {
		return first.Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", first.Error(), e.Count()-1)
}

// Unwrap exposes the aggregated errors to errors.Is/As via Go 1.20's
// multi-error unwrapping.
func (e *Errors) Unwrap() []error {
	pes := e.Errs()
	errs := make([]error, len(pes))
	for i, pe := range pes {
		errs[i] = pe
	}
	return errs
}

// Errs returns the underlying slice of parser errors.
func (e *Errors) Errs() []ParserError { return e.errs }

// Count returns the number of aggregated errors.
func (e *Errors) Count() int { return len(e.errs) }

// First returns the first error, or nil if empty.
func (e *Errors) First() ParserError {
	if len(e.errs) == 0 {
		return nil
	}
	return e.errs[0]
}

// FriendlyErrorMessage renders every aggregated error for display,
// one per line, preferring each error's own FriendlyErrorMessage when
// it has one.
func (e *Errors) FriendlyErrorMessage() string {
	errs := e.Errs()
	lines := make([]string, len(errs))
	for i, pe := range errs {
		if friendly, ok := pe.(interface{ FriendlyErrorMessage() string }); ok {
			lines[i] = friendly.FriendlyErrorMessage()
		} else {
			lines[i] = pe.Error()
		}
	}
	if e.Count() == 1 {
		return lines[0]
	}
	return fmt.Sprintf("%d errors found:\n%s", e.Count(), strings.Join(lines, "\n"))
}
