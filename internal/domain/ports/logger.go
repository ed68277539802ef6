package ports

// Logger abstracts logging so the backend can be swapped freely
// (standard log, zap, slog). Messages are printf-style format strings.
type Logger interface {
	// Debug logs development-level detail
	Debug(msg string, args ...interface{})

	// Info logs normal operational events
	Info(msg string, args ...interface{})

	// Warn logs recoverable problems, e.g. a skipped table row
	Warn(msg string, args ...interface{})

	// Error logs failures
	Error(msg string, args ...interface{})

	// Fatal logs an unrecoverable failure and terminates the program
	Fatal(msg string, args ...interface{})

	// Printf is plain formatted output (for compatibility)
	Printf(format string, args ...interface{})
}
