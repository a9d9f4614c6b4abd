package fluent

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Kind tells which of the three extension shapes a method was registered with.
type Kind int

const (
	KindCascade Kind = iota + 1
	KindChain
	KindUnbox
)

func (k Kind) String() string {
	switch k {
	case KindCascade:
		return "cascade"
	case KindChain:
		return "chain"
	case KindUnbox:
		return "unbox"
	default:
		return "unknown"
	}
}

// method is one registered operation. The call func receives the instance
// and the caller's arguments untouched.
type method struct {
	kind Kind
	call func(i *Instance, args []any) (any, error)
}

// table is the method table shared by a builder lineage and every instance it stamps out.
type table struct {
	id      uuid.UUID
	mu      sync.RWMutex
	methods map[string]method
}

func newTable() *table {
	return &table{
		id:      uuid.New(),
		methods: make(map[string]method),
	}
}

// put stores m under name and reports whether an earlier method was replaced.
func (t *table) put(name string, m method) (replaced bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, replaced = t.methods[name]
	t.methods[name] = m
	return replaced
}

func (t *table) get(name string) (method, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.methods[name]
	return m, ok
}

func (t *table) names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.methods))
	for name := range t.methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// contextOf asserts the stored context to C. A nil context is accepted for
// every nillable C.
func contextOf[C any](v any) (C, bool) {
	if c, ok := v.(C); ok {
		return c, true
	}

	var zero C
	if v != nil {
		return zero, false
	}

	switch reflect.TypeOf((*C)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return zero, true
	default:
		return zero, false
	}
}
