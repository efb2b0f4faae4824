// Package logging defines the minimal structured-logging surface the store
// needs. Implementations can wrap slog, zap, zerolog, etc.
package logging

// Logger is a structured logger. The variadic args are key–value pairs:
//
//	log.Info("slot saved", "slot", id, "bytes", n)
type Logger interface {
	// Debug logs fine-grained diagnostics.
	Debug(msg string, args ...any)

	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs unusual but non-fatal conditions, e.g. a backup recovery.
	Warn(msg string, args ...any)

	// Error logs a failure.
	Error(msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

// Noop discards everything. It is the store's default so library users who
// do not care about logs pay nothing.
type Noop struct{}

func (Noop) Debug(string, ...any) {}
func (Noop) Info(string, ...any)  {}
func (Noop) Warn(string, ...any)  {}
func (Noop) Error(string, ...any) {}
func (n Noop) With(...any) Logger { return n }
