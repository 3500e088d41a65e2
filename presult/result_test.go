package presult

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	r := Ok(42, 3)
	assert.True(t, r.IsValue())
	assert.False(t, r.IsError())
	assert.Equal(t, 42, r.Value())
	assert.Equal(t, 3, r.Consumed())
	assert.NoError(t, r.Err())
}

func TestErr(t *testing.T) {
	cause := errors.New("boom")
	r := Err[int](cause)
	assert.False(t, r.IsValue())
	assert.True(t, r.IsError())
	assert.Equal(t, cause, r.Err())
	assert.Equal(t, 0, r.Consumed())
}

func TestErrPanicsOnNil(t *testing.T) {
	require.Panics(t, func() {
		Err[int](nil)
	})
}

func TestMap(t *testing.T) {
	r := Map(Ok(2, 5), func(v int) string {
		return "value"
	})
	assert.True(t, r.IsValue())
	assert.Equal(t, "value", r.Value())
	assert.Equal(t, 5, r.Consumed())

	cause := errors.New("nope")
	errResult := Map(Err[int](cause), func(v int) string {
		t.Fatal("must not be called on an error result")
		return ""
	})
	assert.True(t, errResult.IsError())
	assert.Equal(t, cause, errResult.Err())
}
