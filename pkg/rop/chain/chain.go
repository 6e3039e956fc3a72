package chain

import (
	"context"

	"github.com/ib-77/resultmap/pkg/rop"
	"github.com/ib-77/resultmap/pkg/rop/solo"
)

// Chain carries a result together with the context its steps run under
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Check fails the chain with whatever error check returns
func (c *Chain[T]) Check(check func(context.Context, T) error) *Chain[T] {
	return Start(c.ctx, solo.FailOnError(c.ctx, c.result, check))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result, onSuccess))
}

func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
