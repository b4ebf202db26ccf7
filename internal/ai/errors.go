package ai

import "fmt"

// MissingKeyError indicates no usable API key is configured for the
// completion service. Callers recover by obtaining a key and retrying;
// the engine never prompts on its own.
type MissingKeyError struct{}

func (e *MissingKeyError) Error() string {
	return "no API key configured for the completion service"
}

// AuthError indicates the completion service rejected the credential
// (HTTP 401). Callers should clear the stored key and ask for a new one.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("completion service rejected API key: %s", e.Message)
	}
	return "completion service rejected API key"
}

// ServiceError represents any other completion service failure: a network
// error, a timeout, a non-success status, or a malformed response body.
// Not retried automatically.
type ServiceError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Cause != nil && e.StatusCode != 0:
		return fmt.Sprintf("completion service error (status %d): %s: %v", e.StatusCode, e.Message, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("completion service error: %s: %v", e.Message, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("completion service error (status %d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("completion service error: %s", e.Message)
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
