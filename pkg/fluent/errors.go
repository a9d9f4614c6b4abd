package fluent

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidName is matched by every *InvalidNameError.
	ErrInvalidName = errors.New("invalid method name")

	// ErrMethodNotFound is returned when an instance is asked for a name that is not in its table.
	ErrMethodNotFound = errors.New("method not found")

	// ErrContextType is returned when the stored context does not have the
	// type the method was registered for.
	ErrContextType = errors.New("context type mismatch")

	// ErrResultType is returned by Extract when a method's result is not of the requested type.
	ErrResultType = errors.New("result type mismatch")
)

// InvalidNameError reports a rejected registration.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid method name %q: %s", e.Name, e.Reason)
}

func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

func methodNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrMethodNotFound, name)
}

func contextTypeMismatch[C any](name string, got any) error {
	return fmt.Errorf("%w: method %q expects %s, instance holds %T",
		ErrContextType, name, reflect.TypeOf((*C)(nil)).Elem(), got)
}
