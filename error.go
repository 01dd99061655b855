package httpmock

import (
	"errors"
	"fmt"
	"reflect"
)

type ConversionOp string

const (
	OpStatusCode  ConversionOp = "status code"
	OpHeaderName  ConversionOp = "header name"
	OpHeaderValue ConversionOp = "header value"
	OpBody        ConversionOp = "body"
)

var ErrInvalidInput = errors.New("invalid input")

// ConversionError reports which conversion rejected which input.
type ConversionError struct {
	Op    ConversionOp
	Input any
	Err   error
}

func newConversionError(op ConversionOp, input any, format string, args ...any) *ConversionError {
	return &ConversionError{
		Op:    op,
		Input: input,
		Err:   fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...),
	}
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert %#v (%T) into %s: %s", e.Input, e.Input, e.Op, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// must turns a failed conversion into a panic carrying the *ConversionError.
func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

// isNil reports untyped nil as well as typed nil pointers, maps, funcs and channels hidden in an
// interface. Nil slices are valid empty inputs.
func isNil(input any) bool {
	if input == nil {
		return true
	}

	switch rv := reflect.ValueOf(input); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
