package adapters

import (
	"errors"
	"strings"
)

// LoggerSDKAdapter implements SDKAdapter by reporting every call through a
// LoggerAdapter. It stands in for the native SDK where none is available.
type LoggerSDKAdapter struct {
	logger LoggerAdapter
	token  string
}

// Ensure LoggerSDKAdapter implements SDKAdapter interface
var _ SDKAdapter = (*LoggerSDKAdapter)(nil)

// NewLoggerSDKAdapter creates a new LoggerSDKAdapter writing to logger.
func NewLoggerSDKAdapter(logger LoggerAdapter) *LoggerSDKAdapter {
	if logger == nil {
		logger = NewNoOpLoggerAdapter()
	}
	return &LoggerSDKAdapter{logger: logger}
}

func (l *LoggerSDKAdapter) Setup(token string, options SetupOptions) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token cannot be empty")
	}
	l.token = token
	l.logger.Info("setup token=%s logging=%t", token, options.Logging)
	return nil
}

// Token returns the token accepted by the last successful Setup.
func (l *LoggerSDKAdapter) Token() string {
	return l.token
}

func (l *LoggerSDKAdapter) Identify(userID string, properties map[string]any, company map[string]any) {
	l.logger.Info("identify userID=%s properties=%v company=%v", userID, properties, company)
}

func (l *LoggerSDKAdapter) Track(name string, properties map[string]any) {
	l.logger.Info("track name=%s properties=%v", name, properties)
}

func (l *LoggerSDKAdapter) Screen(name string) {
	l.logger.Info("screen name=%s", name)
}

func (l *LoggerSDKAdapter) Logout() {
	l.logger.Info("logout")
}
