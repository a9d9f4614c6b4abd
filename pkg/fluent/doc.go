// Package fluent builds fluent wrapper types whose methods are registered
// at runtime.
//
// A Builder owns one method table. Each registration adds a named
// operation in one of three shapes:
// - Cascade: apply an effect to the current context, return the same instance
// - Chain: replace the context with a new value, return the same instance
// - Unbox: return a value derived from the context, leave it untouched
//
// Value wraps a context into an *Instance (or a caller facade built with
// BuildAs). Instances dispatch by name through Invoke or the fluent Call,
// and always see the current table, including methods registered after
// they were created. Re-registering a name replaces the previous method.
//
// The free function Chain shifts the builder's context type parameter;
// the returned builder is a typed view over the same table.
package fluent
