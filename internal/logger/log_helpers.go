// Package logger wraps log/slog with a process-wide default logger and
// package-level helpers.
package logger

// Info logs at info level on the default logger.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Error logs at error level on the default logger.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// Debug logs at debug level on the default logger.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs at warn level on the default logger.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}
