package fluent

import "strings"

// Logger receives registration diagnostics. *slog.Logger satisfies it.
//
// Debug level: methods registered and overwritten.
// Warn level: registrations rejected because of an invalid name.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Option configures a builder at construction time.
type Option func(*registry)

// WithLogger sets the logger for the builder. A nil logger, including a
// typed nil such as (*slog.Logger)(nil), keeps the no-op default.
func WithLogger(logger Logger) Option {
	return func(r *registry) {
		if !IsNil(logger) {
			r.logger = logger
		}
	}
}

// WithReservedNames rejects the given names in addition to "value".
// Matching is case-insensitive.
func WithReservedNames(names ...string) Option {
	return func(r *registry) {
		for _, name := range names {
			r.reserved[strings.ToLower(name)] = struct{}{}
		}
	}
}
