package factory

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// FieldError is the panic value of Set when the context has no settable
// field or key named Field, or the argument cannot be stored in it.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Replace is a chain factory whose new context is the first argument.
// The argument is stored as is, so the instance ends up holding that exact value.
func Replace[C any]() func(args ...any) func(C) C {
	return func(args ...any) func(C) C {
		next := Arg[C](args, 0)
		return func(C) C {
			return next
		}
	}
}

// Set is a cascade factory that stores the first argument in field.
// The context must be a pointer to a struct with that exported field, or a
// map keyed by string.
func Set[C any](field string) func(args ...any) func(C) {
	return func(args ...any) func(C) {
		v := Arg[any](args, 0)
		return func(c C) {
			setField(reflect.ValueOf(c), field, v)
		}
	}
}

func setField(target reflect.Value, field string, v any) {
	switch {
	case target.Kind() == reflect.Map && target.Type().Key().Kind() == reflect.String:
		if target.IsNil() {
			panic(&FieldError{Field: field, Reason: "map is nil"})
		}
		val := assignable(field, v, target.Type().Elem())
		target.SetMapIndex(reflect.ValueOf(field).Convert(target.Type().Key()), val)
	case target.Kind() == reflect.Pointer && !target.IsNil() && target.Elem().Kind() == reflect.Struct:
		f := target.Elem().FieldByName(field)
		if !f.IsValid() {
			panic(&FieldError{Field: field, Reason: "no such field"})
		}
		if !f.CanSet() {
			panic(&FieldError{Field: field, Reason: "field is not settable"})
		}
		f.Set(assignable(field, v, f.Type()))
	default:
		panic(&FieldError{Field: field, Reason: fmt.Sprintf("context of kind %s is neither a struct pointer nor a string-keyed map", target.Kind())})
	}
}

func assignable(field string, v any, t reflect.Type) reflect.Value {
	if v == nil {
		if nillable(t) {
			return reflect.Zero(t)
		}
		panic(&FieldError{Field: field, Reason: fmt.Sprintf("nil is not assignable to %s", t)})
	}

	val := reflect.ValueOf(v)
	switch {
	case val.Type().AssignableTo(t):
		return val
	case val.Type().ConvertibleTo(t):
		return val.Convert(t)
	default:
		panic(&FieldError{Field: field, Reason: fmt.Sprintf("%T is not assignable to %s", v, t)})
	}
}

// Merge is a cascade factory that decodes the first argument, usually a
// map[string]any, into the context. The context must be a non-nil pointer.
// Fields are matched by their json tag, then by name; input is weakly typed.
// A decoding failure panics after the fields decoded so far were written.
func Merge[C any]() func(args ...any) func(C) {
	return func(args ...any) func(C) {
		input := Arg[any](args, 0)
		return func(c C) {
			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				Result:           c,
				TagName:          "json",
				WeaklyTypedInput: true,
			})
			if err != nil {
				panic(fmt.Errorf("merge: %w", err))
			}
			if err := dec.Decode(input); err != nil {
				panic(fmt.Errorf("merge: %w", err))
			}
		}
	}
}

// Format is an unbox factory rendering the context with fmt.Sprintf. The
// context is the first operand, the caller's arguments follow it.
func Format[C any](format string) func(args ...any) func(C) string {
	return func(args ...any) func(C) string {
		return func(c C) string {
			operands := make([]any, 0, len(args)+1)
			operands = append(operands, c)
			operands = append(operands, args...)
			return fmt.Sprintf(format, operands...)
		}
	}
}
