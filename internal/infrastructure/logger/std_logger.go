package logger

import (
	"log"
	"os"

	"idnt/internal/domain/ports"
)

// StdLogger implements ports.Logger with the standard library log package.
// Used by the command-line entry point, where zap's structured console
// output would be overkill.
type StdLogger struct {
	logger *log.Logger
}

// NewStdLogger creates a StdLogger writing to stderr with the given prefix.
func NewStdLogger(prefix string) ports.Logger {
	return &StdLogger{
		logger: log.New(os.Stderr, prefix, log.LstdFlags),
	}
}

// Debug logs development-level detail.
func (l *StdLogger) Debug(msg string, args ...interface{}) {
	l.logger.Printf("[DEBUG] "+msg, args...)
}

// Info logs normal operational events.
func (l *StdLogger) Info(msg string, args ...interface{}) {
	l.logger.Printf("[INFO] "+msg, args...)
}

// Warn logs recoverable problems.
func (l *StdLogger) Warn(msg string, args ...interface{}) {
	l.logger.Printf("[WARN] "+msg, args...)
}

// Error logs failures.
func (l *StdLogger) Error(msg string, args ...interface{}) {
	l.logger.Printf("[ERROR] "+msg, args...)
}

// Fatal logs an unrecoverable failure and terminates the program.
func (l *StdLogger) Fatal(msg string, args ...interface{}) {
	l.logger.Fatalf("[FATAL] "+msg, args...)
}

// Printf is plain formatted output.
func (l *StdLogger) Printf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}
