package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// GetErrors splits an errors.Join tree one level deep.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinErrors appends next to the errors already held by err.
func JoinErrors(err error, next error) error {
	if next == nil {
		return err
	}
	return errors.Join(append(GetErrors(err), next)...)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
