package logger

import "idnt/internal/domain/ports"

// NopLogger discards everything. It is the default for quiet runs and
// keeps tests silent.
type NopLogger struct{}

// NewNopLogger creates a NopLogger.
func NewNopLogger() ports.Logger {
	return NopLogger{}
}

func (NopLogger) Debug(msg string, args ...interface{}) {}

func (NopLogger) Info(msg string, args ...interface{}) {}

func (NopLogger) Warn(msg string, args ...interface{}) {}

func (NopLogger) Error(msg string, args ...interface{}) {}

func (NopLogger) Fatal(msg string, args ...interface{}) {}

func (NopLogger) Printf(format string, args ...interface{}) {}
