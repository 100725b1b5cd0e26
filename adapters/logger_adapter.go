package adapters

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelNone  LogLevel = "NONE"
)

var logLevelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelNone:  4,
}

// Enabled reports whether a message at level passes a logger set to threshold.
func (threshold LogLevel) Enabled(level LogLevel) bool {
	return logLevelRank[level] >= logLevelRank[threshold]
}

// LoggerAdapter is an interface for logging.
// Implement this interface to use custom loggers.
type LoggerAdapter interface {
	// Debug logs a debug message
	Debug(message string, args ...any)
	// Info logs an info message
	Info(message string, args ...any)
	// Warn logs a warning message
	Warn(message string, args ...any)
	// Error logs an error message
	Error(message string, args ...any)
}
