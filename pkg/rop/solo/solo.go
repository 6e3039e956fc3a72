package solo

import (
	"context"
	"errors"

	"github.com/ib-77/resultmap/pkg/rop"
)

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, rop.Success(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	if valid, errMsg := validate(ctx, input.Result()); !valid {
		return rop.Fail[T](errors.New(errMsg))
	}
	return input
}

// FailOnError keeps the success unless check returns an error, which becomes the failure.
func FailOnError[T any](ctx context.Context, input rop.Result[T],
	check func(ctx context.Context, in T) error) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	if err := check(ctx, input.Result()); err != nil {
		return rop.Fail[T](err)
	}
	return input
}

// ValidateAll runs every step against input and joins the failures.
// With breakOnError it returns after the first failing step.
func ValidateAll[T any](ctx context.Context, input rop.Result[T], breakOnError bool,
	steps ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(ctx, input, breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {
			if current.IsFailure() {
				err = rop.JoinErrors(err, current.Err())
			}
			if rop.IsNil(err) {
				return current
			}
			return rop.Fail[T](err)
		},
		steps...)
}

func Switch[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Carry[In, Out](input)
	}
	return onSuccess(ctx, input.Result())
}

func Map[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Carry[In, Out](input)
	}
	return rop.Success(onSuccess(ctx, input.Result()))
}

func Try[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Carry[In, Out](input)
	}
	return rop.FromTry(onTryExecute(ctx, input.Result()))
}

func Tee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

// DoubleTee calls exactly one of the handlers; nil handlers are skipped.
func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	case input.IsCancel():
		if onCancel != nil {
			onCancel(ctx, input.Err())
		}
	default:
		if onError != nil {
			onError(ctx, input.Err())
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Result())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}

// Join feeds input through steps in order, folding each output with concat.
// A done context stops it and returns what has been folded so far.
func Join[T any](ctx context.Context, input rop.Result[T], breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	steps ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(steps) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	final := concat(ctx, steps[0](ctx, input))
	if final.IsFailure() && breakOnError {
		return final
	}

	for _, step := range steps[1:] {
		if ctx.Err() != nil {
			return final
		}

		next := concat(ctx, step(ctx, final))
		if next.IsFailure() && breakOnError {
			return next
		}
		final = next
	}
	return final
}
