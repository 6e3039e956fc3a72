package foobar

import (
	"context"
	"errors"

	"github.com/ib-77/resultmap/pkg/rop"
	"github.com/ib-77/resultmap/pkg/rop/chain"
	"github.com/ib-77/resultmap/pkg/rop/collect"
)

// Expected is the only text a Bar accepts.
const Expected = "bar"

var (
	ErrMissingValue    = errors.New("foo didn't have a value")
	ErrUnexpectedValue = errors.New("value was not bar")
)

type Foo struct {
	value rop.Option[*Bar]
}

// NewFoo wraps bar; a nil bar gives an empty Foo.
func NewFoo(bar *Bar) Foo {
	return Foo{value: rop.FromPtr(bar)}
}

func Empty() Foo {
	return Foo{value: rop.None[*Bar]()}
}

func (f Foo) ToBar() rop.Result[*Bar] {
	return rop.OkOr(f.value, ErrMissingValue)
}

type Bar struct {
	value string
}

func NewBar(value string) *Bar {
	return &Bar{value: value}
}

func (b *Bar) ToValue() rop.Result[string] {
	if b.value != Expected {
		return rop.Fail[string](ErrUnexpectedValue)
	}
	return rop.Success(b.value)
}

func (b *Bar) String() string {
	return b.value
}

// Lookup resolves one Foo to its validated text.
func Lookup(ctx context.Context, foo Foo) rop.Result[string] {
	return chain.Then(chain.Start(ctx, foo.ToBar()),
		func(_ context.Context, bar *Bar) rop.Result[string] {
			return bar.ToValue()
		}).Result()
}

func LookupAll(ctx context.Context, foos []Foo) rop.Result[[]string] {
	return collect.All(ctx, foos, Lookup)
}

func LookupEach(ctx context.Context, foos []Foo) []rop.Result[string] {
	return collect.Each(ctx, foos, Lookup)
}

// FromValues builds one Foo per entry; nil entries become empty Foos.
func FromValues(values []*string) []Foo {
	foos := make([]Foo, 0, len(values))
	for _, v := range values {
		if v == nil {
			foos = append(foos, Empty())
			continue
		}
		foos = append(foos, NewFoo(NewBar(*v)))
	}
	return foos
}
