// Package factory holds ready-made factories for fluent.Builder
// registrations.
//
// - Replace: chain to the value passed by the caller
// - Set/Merge: cascade a single field or a whole map into the context
// - Format/JSON/YAML: unbox the context as text
// - Arg: typed positional access for hand-written factories
//
// Factories report bad input by panicking; the panic propagates out of
// the registered method untouched.
package factory
