package adapters

import "go.uber.org/zap"

// ZapLoggerAdapter implements LoggerAdapter on top of a zap logger.
type ZapLoggerAdapter struct {
	sugar *zap.SugaredLogger
}

// Ensure ZapLoggerAdapter implements LoggerAdapter interface
var _ LoggerAdapter = (*ZapLoggerAdapter)(nil)

// NewZapLoggerAdapter wraps logger. A nil logger is replaced by zap.NewNop.
func NewZapLoggerAdapter(logger *zap.Logger) *ZapLoggerAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLoggerAdapter{
		sugar: logger.WithOptions(zap.AddCallerSkip(1)).Named("userpilot").Sugar(),
	}
}

func (z *ZapLoggerAdapter) Debug(message string, args ...any) {
	z.sugar.Debugf(message, args...)
}

func (z *ZapLoggerAdapter) Info(message string, args ...any) {
	z.sugar.Infof(message, args...)
}

func (z *ZapLoggerAdapter) Warn(message string, args ...any) {
	z.sugar.Warnf(message, args...)
}

func (z *ZapLoggerAdapter) Error(message string, args ...any) {
	z.sugar.Errorf(message, args...)
}
