package collect

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/resultmap/pkg/rop"
)

var errNegative = errors.New("negative")

func itoa(calls *int) func(ctx context.Context, in int) rop.Result[string] {
	return func(ctx context.Context, in int) rop.Result[string] {
		*calls++
		if in < 0 {
			return rop.Fail[string](errNegative)
		}
		return rop.Success(strconv.Itoa(in))
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputs    []int
		want      []string
		wantErr   error
		wantCalls int
	}{
		{name: "all succeed in order", inputs: []int{3, 1, 2}, want: []string{"3", "1", "2"}, wantCalls: 3},
		{name: "stops at first failure", inputs: []int{1, -1, 2, -2}, wantErr: errNegative, wantCalls: 2},
		{name: "empty input", inputs: nil, want: []string{}, wantCalls: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			res := All(context.Background(), tt.inputs, itoa(&calls))

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				require.False(t, res.IsSuccess())
				assert.ErrorIs(t, res.Err(), tt.wantErr)
				assert.Nil(t, res.Result())
				return
			}
			require.True(t, res.IsSuccess(), "unexpected error: %v", res.Err())
			assert.Equal(t, tt.want, res.Result())
		})
	}
}

func TestAll_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	res := All(ctx, []int{1, 2}, itoa(&calls))

	assert.Zero(t, calls)
	assert.True(t, res.IsCancel())
	assert.ErrorIs(t, res.Err(), context.Canceled)
}

func TestEach_KeepsEveryResult(t *testing.T) {
	t.Parallel()

	calls := 0
	results := Each(context.Background(), []int{1, -1, 2}, itoa(&calls))

	require.Len(t, results, 3)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "1", results[0].Result())
	assert.ErrorIs(t, results[1].Err(), errNegative)
	assert.Equal(t, "2", results[2].Result())
}

func TestEach_CancelMarksRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	f := func(ctx context.Context, in int) rop.Result[int] {
		calls++
		if in == 2 {
			cancel()
		}
		return rop.Success(in)
	}

	results := Each(ctx, []int{1, 2, 3, 4}, f)

	require.Len(t, results, 4)
	assert.Equal(t, 2, calls)
	assert.True(t, results[0].IsSuccess())
	assert.True(t, results[1].IsSuccess())
	assert.True(t, results[2].IsCancel())
	assert.True(t, results[3].IsCancel())
}

func TestSequence(t *testing.T) {
	t.Parallel()

	ok := Sequence([]rop.Result[int]{rop.Success(1), rop.Success(2)})
	require.True(t, ok.IsSuccess())
	assert.Equal(t, []int{1, 2}, ok.Result())

	first := errors.New("first")
	res := Sequence([]rop.Result[int]{rop.Success(1), rop.Fail[int](first), rop.Fail[int](errors.New("second"))})
	require.True(t, res.IsFailure())
	assert.Equal(t, first, res.Err())

	cancelled := Sequence([]rop.Result[int]{rop.Cancel[int](context.DeadlineExceeded)})
	assert.True(t, cancelled.IsCancel())
}

func TestPartitionAndErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	results := []rop.Result[string]{
		rop.Success("x"),
		rop.Fail[string](a),
		rop.Success("y"),
		rop.Fail[string](b),
	}

	oks, errs := Partition(results)
	assert.Equal(t, []string{"x", "y"}, oks)
	assert.Equal(t, []error{a, b}, errs)

	err := Errors(results)
	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
	assert.Len(t, rop.GetErrors(err), 2)

	assert.NoError(t, Errors([]rop.Result[string]{rop.Success("z")}))
}
