package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	t.Parallel()

	some := Some(3)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, some.OrElse(9))

	none := None[int]()
	assert.True(t, none.IsNone())
	assert.Equal(t, 9, none.OrElse(9))
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	x := "bar"
	assert.True(t, FromPtr(&x).IsSome())
	assert.True(t, FromPtr[string](nil).IsNone())
}

func TestOkOr(t *testing.T) {
	t.Parallel()

	errMissing := errors.New("missing")

	ok := OkOr(Some("bar"), errMissing)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "bar", ok.Result())

	missing := OkOr(None[string](), errMissing)
	assert.True(t, missing.IsFailure())
	assert.ErrorIs(t, missing.Err(), errMissing)
}
