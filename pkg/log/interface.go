// Package log provides a structured logging interface for dataset description
// operations.
//
// This package defines a minimal, slog-compatible logging interface that allows
// for flexible implementation switching while providing dataset-specific
// structured logging capabilities. The interface is designed to integrate
// seamlessly with Go's standard log/slog package and popular logging libraries
// like zerolog, logrus, and zap.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - Dataset-specific structured attributes (shapes, column roles, prediction types)
//   - Context-aware logging with field chaining
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "dataset",
//	)
//	logger.Debug("Descriptor constructed",
//	    log.RowsKey, 1000,
//	    log.ColumnsKey, 5,
//	    log.DependentColKey, "price",
//	)
package log

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// This interface provides the core logging methods with structured field
// support, allowing rich contextual information to be included with log
// messages. It is implementation-agnostic, enabling easy switching between
// logging backends while maintaining a consistent API.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs are typically used for detailed diagnostic information
	// and are usually disabled in production environments.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	// Fields are key-value pairs that will be attached to every record
	// emitted by the returned logger.
	With(fields ...any) Logger
}
