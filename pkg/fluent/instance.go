package fluent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Instance is a single wrapped context. Value is the current context and may
// be read or replaced directly; the methods available on the instance are
// whatever its builder's table holds at call time.
type Instance struct {
	Value any

	id        uuid.UUID
	createdAt time.Time
	table     *table
	err       error
}

func newInstance(value any, t *table) *Instance {
	return &Instance{
		Value:     value,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		table:     t,
	}
}

// Invoke runs the method registered under name. Cascade and chain methods
// return the instance itself, unbox methods return the derived value.
// Panics raised by the registered factory are not recovered.
func (i *Instance) Invoke(name string, args ...any) (any, error) {
	m, ok := i.table.get(name)
	if !ok {
		return nil, methodNotFound(name)
	}
	return m.call(i, args)
}

// Call is the fluent form of Invoke. The first failure is kept on the
// instance and turns every later Call into a no-op until Reset.
// Calling an unbox method through Call discards its result.
func (i *Instance) Call(name string, args ...any) *Instance {
	if i.err != nil {
		return i
	}
	if _, err := i.Invoke(name, args...); err != nil {
		i.err = err
	}
	return i
}

// Err returns the failure recorded by Call, if any.
func (i *Instance) Err() error {
	return i.err
}

// Reset clears the failure recorded by Call.
func (i *Instance) Reset() *Instance {
	i.err = nil
	return i
}

// ID identifies the instance.
func (i *Instance) ID() uuid.UUID {
	return i.id
}

// CreatedAt time creation (UTC)
func (i *Instance) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Instance) String() string {
	return fmt.Sprintf("fluent.Instance{%v}", i.Value)
}

// ValueAs returns the current context as C.
func ValueAs[C any](i *Instance) (C, bool) {
	return contextOf[C](i.Value)
}

// Extract invokes name and returns its result as U.
func Extract[U any](i *Instance, name string, args ...any) Result[U] {
	out, err := i.Invoke(name, args...)
	if err != nil {
		return Fail[U](err)
	}

	u, ok := contextOf[U](out)
	if !ok {
		return Fail[U](fmt.Errorf("%w: method %q returned %T", ErrResultType, name, out))
	}
	return Success(u)
}
