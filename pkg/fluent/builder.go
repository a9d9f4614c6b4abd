package fluent

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ReservedName is the name of the context accessor. It can never be registered.
const ReservedName = "value"

// registry is the state shared by a builder and every typed view derived from it.
type registry struct {
	table    *table
	logger   Logger
	reserved map[string]struct{}

	mu   sync.Mutex
	errs []error
}

func (r *registry) check(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	}
	if _, ok := r.reserved[strings.ToLower(name)]; ok {
		return &InvalidNameError{Name: name, Reason: "name is reserved"}
	}
	return nil
}

func (r *registry) register(name string, m method) {
	if err := r.check(name); err != nil {
		r.logger.Warn("fluent: registration rejected", "builder", r.table.id, "name", name, "error", err)

		r.mu.Lock()
		r.errs = append(r.errs, err)
		r.mu.Unlock()
		return
	}

	if r.table.put(name, m) {
		r.logger.Debug("fluent: method overwritten", "builder", r.table.id, "name", name, "kind", m.kind)
		return
	}
	r.logger.Debug("fluent: method registered", "builder", r.table.id, "name", name, "kind", m.kind)
}

// Builder registers named operations for wrappers of type W over a context of type C.
// Every registration returns the builder so calls can be chained.
type Builder[W, C any] struct {
	reg  *registry
	wrap func(*Instance) W
}

// Build returns a builder with a fresh, empty method table whose wrapper is the bare *Instance.
func Build[C any](opts ...Option) *Builder[*Instance, C] {
	return BuildAs[*Instance, C](func(i *Instance) *Instance { return i }, opts...)
}

// BuildAs returns a builder with a fresh, empty method table. wrap turns
// every new instance into the caller's facade type W, typically a struct
// embedding *Instance with typed methods that dispatch by name.
func BuildAs[W, C any](wrap func(*Instance) W, opts ...Option) *Builder[W, C] {
	if wrap == nil {
		panic("fluent: BuildAs requires a non-nil wrap func")
	}

	reg := &registry{
		table:    newTable(),
		logger:   nopLogger{},
		reserved: map[string]struct{}{ReservedName: {}},
	}
	for _, opt := range opts {
		opt(reg)
	}

	return &Builder[W, C]{reg: reg, wrap: wrap}
}

// Value wraps c into a new instance bound to the builder's method table.
func (b *Builder[W, C]) Value(c C) W {
	return b.wrap(newInstance(c, b.reg.table))
}

// Cascade registers name as an operation that applies factory(args...) to
// the current context for its side effect and returns the same instance.
func (b *Builder[W, C]) Cascade(name string, factory func(args ...any) func(C)) *Builder[W, C] {
	b.reg.register(name, method{
		kind: KindCascade,
		call: func(i *Instance, args []any) (any, error) {
			c, ok := contextOf[C](i.Value)
			if !ok {
				return nil, contextTypeMismatch[C](name, i.Value)
			}
			factory(args...)(c)
			return i, nil
		},
	})
	return b
}

// Chain registers name as an operation that replaces the context with
// factory(args...)(context) and returns the same instance.
func (b *Builder[W, C]) Chain(name string, factory func(args ...any) func(C) C) *Builder[W, C] {
	return Chain(b, name, factory)
}

// Chain is the type-shifting form of Builder.Chain. The returned builder is
// a view over the same method table with N as its context type, so later
// registrations operate on the replaced context.
func Chain[W, C, N any](b *Builder[W, C], name string, factory func(args ...any) func(C) N) *Builder[W, N] {
	b.reg.register(name, method{
		kind: KindChain,
		call: func(i *Instance, args []any) (any, error) {
			c, ok := contextOf[C](i.Value)
			if !ok {
				return nil, contextTypeMismatch[C](name, i.Value)
			}
			i.Value = factory(args...)(c)
			return i, nil
		},
	})
	return &Builder[W, N]{reg: b.reg, wrap: b.wrap}
}

// Unbox registers name as an operation that returns factory(args...)(context)
// and leaves the context untouched.
func (b *Builder[W, C]) Unbox(name string, factory func(args ...any) func(C) any) *Builder[W, C] {
	return UnboxAs(b, name, factory)
}

// UnboxAs is Builder.Unbox for factories with a concrete result type.
func UnboxAs[W, C, U any](b *Builder[W, C], name string, factory func(args ...any) func(C) U) *Builder[W, C] {
	b.reg.register(name, method{
		kind: KindUnbox,
		call: func(i *Instance, args []any) (any, error) {
			c, ok := contextOf[C](i.Value)
			if !ok {
				return nil, contextTypeMismatch[C](name, i.Value)
			}
			return factory(args...)(c), nil
		},
	})
	return b
}

// Err returns every rejected registration joined, or nil.
func (b *Builder[W, C]) Err() error {
	b.reg.mu.Lock()
	defer b.reg.mu.Unlock()
	return errors.Join(b.reg.errs...)
}

// Methods returns the registered names in sorted order.
func (b *Builder[W, C]) Methods() []string {
	return b.reg.table.names()
}

// Has reports whether name is registered.
func (b *Builder[W, C]) Has(name string) bool {
	_, ok := b.reg.table.get(name)
	return ok
}

// Kind reports how name was registered.
func (b *Builder[W, C]) Kind(name string) (Kind, bool) {
	m, ok := b.reg.table.get(name)
	return m.kind, ok
}

// ID identifies the method table. Views returned by Chain share it.
func (b *Builder[W, C]) ID() uuid.UUID {
	return b.reg.table.id
}
