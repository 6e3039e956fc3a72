package rop

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError is a result that may carry an error instead of a value
type WithError[T any] interface {
	ResultProvider[T]
	Err() error
	IsSuccess() bool
}

// WithCancel adds cancellation to WithError
type WithCancel[T any] interface {
	WithError[T]
	IsCancel() bool
}

// Traced is a cancellable result with a stable identity
type Traced[T any] interface {
	WithCancel[T]
	Id() uuid.UUID
}

var _ Traced[struct{}] = Result[struct{}]{}
