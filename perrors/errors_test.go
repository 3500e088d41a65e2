package perrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringLocation string

func (s stringLocation) String() string { return string(s) }

func TestBaseParserErrorAccessors(t *testing.T) {
	cause := fmt.Errorf("unexpected token")
	e := NewParserError(ErrorOpts{
		ErrType:  "syntax error",
		Cause:    cause,
		Location: stringLocation("line 3"),
	})
	assert.Equal(t, "syntax error", e.Type())
	assert.Equal(t, "", e.Message())
	assert.Equal(t, cause, e.Cause())
	assert.Equal(t, stringLocation("line 3"), e.Location())
	assert.Equal(t, cause, errors.Unwrap(e))
}

func TestBaseParserErrorErrorPrefersCauseOverMessage(t *testing.T) {
	e := NewParserError(ErrorOpts{
		Message: "ignored because Cause is set",
		Cause:   fmt.Errorf("boom"),
	})
	assert.Equal(t, "boom", e.Error())
}

func TestSyntaxErrorTypeIsFixed(t *testing.T) {
	e := NewSyntaxError(ErrorOpts{Message: "bad token"})
	assert.Equal(t, "syntax error", e.Type())
	assert.Equal(t, "syntax error: bad token", e.Error())
}

func TestFriendlyErrorMessageIncludesLocation(t *testing.T) {
	e := NewSyntaxError(ErrorOpts{
		Message:  "unexpected token",
		Location: stringLocation("3:5"),
	})
	assert.Equal(t, "syntax error: unexpected token\n  --> 3:5", e.FriendlyErrorMessage())
}

func TestNewErrorsReturnsNilForEmptySlice(t *testing.T) {
	assert.Nil(t, NewErrors(nil))
}

func TestErrorsAggregatesMultipleCauses(t *testing.T) {
	errs := NewErrors([]ParserError{
		NewSyntaxError(ErrorOpts{Message: "first"}),
		NewSyntaxError(ErrorOpts{Message: "second"}),
		NewSyntaxError(ErrorOpts{Message: "third"}),
	})
	require.NotNil(t, errs)
	assert.Equal(t, 3, errs.Count())
	assert.Equal(t, "syntax error: first", errs.First().Error())
	assert.Equal(t, "syntax error: first (and 2 more errors)", errs.Error())
	assert.Len(t, errs.Errs(), 3)
	assert.Len(t, errs.Unwrap(), 3)
}

func TestErrorsFriendlyErrorMessageListsEveryError(t *testing.T) {
	errs := NewErrors([]ParserError{
		NewSyntaxError(ErrorOpts{Message: "first"}),
		NewSyntaxError(ErrorOpts{Message: "second"}),
	})
	require.NotNil(t, errs)
	msg := errs.FriendlyErrorMessage()
	assert.Contains(t, msg, "2 errors found:")
	assert.Contains(t, msg, "syntax error: first")
	assert.Contains(t, msg, "syntax error: second")
}

func TestErrorsSupportsErrorsAs(t *testing.T) {
	var err error = NewErrors([]ParserError{NewSyntaxError(ErrorOpts{Message: "boom"})})
	var target *Errors
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 1, target.Count())
}
