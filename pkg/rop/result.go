package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is either a success holding a value, a failure holding an error,
// or a cancellation holding the context error that stopped it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func newResult[T any](r T, err error, isSuccess, isCancel bool) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		err:       err,
		isSuccess: isSuccess,
		isCancel:  isCancel,
	}
}

func Success[T any](r T) Result[T] {
	return newResult(r, nil, true, false)
}

func Fail[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, false)
}

func Cancel[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, true)
}

// FromTry lifts a (value, error) pair. Context cancellation errors become a cancel result.
func FromTry[T any](r T, err error) Result[T] {
	if err == nil {
		return Success(r)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// Carry moves a non-successful result to another value type, keeping its
// error, kind and identity.
func Carry[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isSuccess: false,
		isCancel:  from.isCancel,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into the usual Go pair.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports any non-successful result, cancellations included.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && (r.err != nil || r.isCancel)
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
