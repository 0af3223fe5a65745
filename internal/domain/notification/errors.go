package notification

import "errors"

// Notification domain errors
var (
	ErrMailerNotConfigured = errors.New("mailer is not configured")
	ErrMissingEmail        = errors.New("missing employee email in settings")
)
