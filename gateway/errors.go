package gateway

import "errors"

// ErrUnknownRole is returned when a signin/signup response carries a role
// outside DOCTOR/PATIENT/ADMIN. No session is committed in that case.
var ErrUnknownRole = errors.New("unknown role in auth response")

// ValidationError is a local form-validation failure caught before any
// network call is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrorDescriptor is the backend's structured error payload.
type ErrorDescriptor struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the uniform envelope returned by every mutating call.
type Result struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Err     *ErrorDescriptor `json:"error,omitempty"`
}

// FailureMessage picks the backend-supplied message for a failed mutation,
// falling back to the given fixed string.
func (r *Result) FailureMessage(fallback string) string {
	if r == nil {
		return fallback
	}
	if r.Err != nil && r.Err.Message != "" {
		return r.Err.Message
	}
	if r.Message != "" {
		return r.Message
	}
	return fallback
}
