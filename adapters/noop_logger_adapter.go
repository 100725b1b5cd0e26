package adapters

// Ensure NoOpLoggerAdapter implements LoggerAdapter interface
var _ LoggerAdapter = (*NoOpLoggerAdapter)(nil)

// NoOpLoggerAdapter discards every message. The Bridge falls back to it when
// no logger is supplied.
type NoOpLoggerAdapter struct{}

// NewNoOpLoggerAdapter creates a new no-op logger
func NewNoOpLoggerAdapter() *NoOpLoggerAdapter {
	return &NoOpLoggerAdapter{}
}

func (n *NoOpLoggerAdapter) Debug(message string, args ...any) {}
func (n *NoOpLoggerAdapter) Info(message string, args ...any)  {}
func (n *NoOpLoggerAdapter) Warn(message string, args ...any)  {}
func (n *NoOpLoggerAdapter) Error(message string, args ...any) {}
