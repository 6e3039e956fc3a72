package collect

import (
	"context"

	"github.com/ib-77/resultmap/pkg/rop"
)

// All applies f to inputs in order and stops at the first result that is
// not a success, returning it as the aggregate failure.
func All[In, Out any](ctx context.Context, inputs []In,
	f func(ctx context.Context, in In) rop.Result[Out]) rop.Result[[]Out] {

	out := make([]Out, 0, len(inputs))
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return rop.Cancel[[]Out](err)
		}

		res := f(ctx, in)
		if !res.IsSuccess() {
			return rop.Carry[Out, []Out](res)
		}
		out = append(out, res.Result())
	}
	return rop.Success(out)
}

// Each applies f to every input. Once ctx is done the remaining inputs are
// reported as cancelled without calling f.
func Each[In, Out any](ctx context.Context, inputs []In,
	f func(ctx context.Context, in In) rop.Result[Out]) []rop.Result[Out] {

	out := make([]rop.Result[Out], 0, len(inputs))
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			out = append(out, rop.Cancel[Out](err))
			continue
		}
		out = append(out, f(ctx, in))
	}
	return out
}

// Sequence is All over results that are already computed.
func Sequence[T any](results []rop.Result[T]) rop.Result[[]T] {
	out := make([]T, 0, len(results))
	for _, res := range results {
		if !res.IsSuccess() {
			return rop.Carry[T, []T](res)
		}
		out = append(out, res.Result())
	}
	return rop.Success(out)
}

func Partition[T any](results []rop.Result[T]) (oks []T, errs []error) {
	for _, res := range results {
		if res.IsSuccess() {
			oks = append(oks, res.Result())
			continue
		}
		errs = append(errs, res.Err())
	}
	return oks, errs
}

// Errors joins the errors of every failed result, or returns nil.
func Errors[T any](results []rop.Result[T]) error {
	var err error
	for _, res := range results {
		if !res.IsSuccess() {
			err = rop.JoinErrors(err, res.Err())
		}
	}
	return err
}
