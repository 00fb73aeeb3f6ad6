package utils

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrEmptySubmission    = errors.New("empty submission")
	ErrValidationRejected = errors.New("profile value outside allowed domain")
	ErrNothingToRegen     = errors.New("no previous user query to regenerate")

	ErrBackendTimeout     = errors.New("backend timeout")
	ErrBackendUnreachable = errors.New("backend unreachable")
)

// BackendStatusError is a non-2xx reply from the chat backend. The status
// code is embedded in the user-visible failure string.
type BackendStatusError struct {
	StatusCode int
}

func (e *BackendStatusError) Error() string {
	return "backend returned non-OK status"
}
