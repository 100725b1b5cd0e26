package adapters

// SDKAdapter is an interface for the downstream Userpilot SDK.
// Implement this interface to bridge to a native or remote Userpilot client.
type SDKAdapter interface {
	// Setup initializes the SDK.
	//
	// Parameters:
	//   - token: The Userpilot app token
	//   - options: SDK options such as logging
	//
	// Returns error if the SDK could not be initialized.
	Setup(token string, options SetupOptions) error

	// Identify identifies a user, optionally attaching user properties
	// and a company object. Either map may be nil.
	Identify(userID string, properties map[string]any, company map[string]any)

	// Track records a named event with optional properties.
	Track(name string, properties map[string]any)

	// Screen records a screen view.
	Screen(name string)

	// Logout clears the current user.
	Logout()
}
