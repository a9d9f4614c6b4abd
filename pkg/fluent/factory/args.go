package factory

import (
	"fmt"
	"reflect"
)

// ArgumentError is the panic value of Arg. It propagates out of the
// registered method unchanged.
type ArgumentError struct {
	Index int
	Want  reflect.Type
	Got   any
	// Missing is set when fewer than Index+1 arguments were passed.
	Missing bool
}

func (e *ArgumentError) Error() string {
	if e.Missing {
		return fmt.Sprintf("argument %d (%s) is missing", e.Index, e.Want)
	}
	return fmt.Sprintf("argument %d: expected %s, got %T", e.Index, e.Want, e.Got)
}

// Arg returns args[i] as T. It panics with *ArgumentError when the argument
// is missing or has another type. A nil argument yields the zero value of a
// nillable T.
func Arg[T any](args []any, i int) T {
	want := reflect.TypeOf((*T)(nil)).Elem()
	if i < 0 || i >= len(args) {
		panic(&ArgumentError{Index: i, Want: want, Missing: true})
	}

	if v, ok := args[i].(T); ok {
		return v
	}

	var zero T
	if args[i] == nil && nillable(want) {
		return zero
	}
	panic(&ArgumentError{Index: i, Want: want, Got: args[i]})
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
