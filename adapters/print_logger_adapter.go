package adapters

import (
	"io"
	"log"
	"os"
)

// PrintLoggerAdapter implements LoggerAdapter using standard log package
type PrintLoggerAdapter struct {
	level  LogLevel
	logger *log.Logger
}

// NewPrintLoggerAdapter creates a new print logger with the specified level
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return NewPrintLoggerAdapterWithWriter(level, os.Stderr)
}

// NewPrintLoggerAdapterWithWriter creates a print logger writing to w.
func NewPrintLoggerAdapterWithWriter(level LogLevel, w io.Writer) *PrintLoggerAdapter {
	return &PrintLoggerAdapter{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
	}
}

func (p *PrintLoggerAdapter) Debug(message string, args ...any) {
	if p.level.Enabled(LogLevelDebug) {
		p.logger.Printf("[DEBUG] [Userpilot] "+message, args...)
	}
}

func (p *PrintLoggerAdapter) Info(message string, args ...any) {
	if p.level.Enabled(LogLevelInfo) {
		p.logger.Printf("[INFO] [Userpilot] "+message, args...)
	}
}

func (p *PrintLoggerAdapter) Warn(message string, args ...any) {
	if p.level.Enabled(LogLevelWarn) {
		p.logger.Printf("[WARN] [Userpilot] "+message, args...)
	}
}

func (p *PrintLoggerAdapter) Error(message string, args ...any) {
	if p.level.Enabled(LogLevelError) {
		p.logger.Printf("[ERROR] [Userpilot] "+message, args...)
	}
}
