package notification

import "context"

// Email represents an outbound templated email
type Email struct {
	To       string
	Template string
	Data     map[string]interface{}
}

// Dispatcher sends notifications through an external provider
type Dispatcher interface {
	// SendEmail sends a templated email. Implementations must not panic;
	// delivery failures are returned as errors for the caller to record.
	SendEmail(ctx context.Context, email Email) error
}
