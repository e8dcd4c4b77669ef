package domain

// ValidationError identifies which input step is incomplete. It is
// returned, never panicked: the caller branches on it to tell the user
// which step to go back and finish.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
