package fluent

import (
	"time"

	"github.com/google/uuid"
)

// ResultProvider is implemented by Result.
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Wrapped is implemented by *Instance and by any facade that embeds it.
type Wrapped interface {
	Invoke(name string, args ...any) (any, error)
	Err() error
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ ResultProvider[any] = Result[any]{}
	_ Wrapped             = (*Instance)(nil)
)
