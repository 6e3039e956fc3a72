package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultKinds(t *testing.T) {
	t.Parallel()

	s := Success("bar")
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "bar", s.Result())

	f := Fail[string](errors.New("boom"))
	assert.False(t, f.IsSuccess())
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())

	c := Cancel[string](context.Canceled)
	assert.True(t, c.IsFailure())
	assert.True(t, c.IsCancel())

	var empty Result[string]
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsFailure())
}

func TestResultIdentity(t *testing.T) {
	t.Parallel()

	a, b := Success(1), Success(1)
	assert.NotEqual(t, a.Id(), b.Id())
	assert.Equal(t, "UTC", a.CreatedAt().Location().String())
}

func TestCarry(t *testing.T) {
	t.Parallel()

	from := Cancel[int](context.DeadlineExceeded)
	to := Carry[int, string](from)

	assert.Equal(t, from.Id(), to.Id())
	assert.Equal(t, from.CreatedAt(), to.CreatedAt())
	assert.True(t, to.IsCancel())
	assert.ErrorIs(t, to.Err(), context.DeadlineExceeded)
	assert.Empty(t, to.Result())
}

func TestFromTry(t *testing.T) {
	t.Parallel()

	v, err := FromTry(5, nil).Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	assert.False(t, FromTry(0, errors.New("x")).IsCancel())
	assert.True(t, FromTry(0, fmt.Errorf("lookup: %w", context.Canceled)).IsCancel())
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	a, b := errors.New("a"), errors.New("b")
	assert.Equal(t, []error{a}, GetErrors(a))

	joined := JoinErrors(JoinErrors(nil, a), b)
	assert.Equal(t, []error{a, b}, GetErrors(joined))
	assert.Equal(t, joined, JoinErrors(joined, nil))

	var p *int
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(nil))
	assert.False(t, IsNil(3))
}
