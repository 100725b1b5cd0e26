package adapters

// NoOpSDKAdapter is an SDK adapter that performs no operations.
// Useful when the plugin must be wired but nothing should reach Userpilot.
type NoOpSDKAdapter struct{}

// Ensure NoOpSDKAdapter implements SDKAdapter interface
var _ SDKAdapter = (*NoOpSDKAdapter)(nil)

// NewNoOpSDKAdapter creates a new NoOpSDKAdapter instance.
func NewNoOpSDKAdapter() *NoOpSDKAdapter {
	return &NoOpSDKAdapter{}
}

// Setup does nothing and always returns nil.
func (n *NoOpSDKAdapter) Setup(token string, options SetupOptions) error {
	return nil
}

func (n *NoOpSDKAdapter) Identify(userID string, properties map[string]any, company map[string]any) {}
func (n *NoOpSDKAdapter) Track(name string, properties map[string]any)                              {}
func (n *NoOpSDKAdapter) Screen(name string)                                                        {}
func (n *NoOpSDKAdapter) Logout()                                                                   {}
