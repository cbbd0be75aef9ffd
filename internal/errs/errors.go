// Package errs provides the structured error type shared across trigpeach's
// core packages.
package errs

import "fmt"

// Error codes for the core packages.
const (
	CodeAllocationFailure = 1
	CodeInvalidNonceSyntax = 2
	CodeBadTrailer = 3
)

// CoreError is a structured error carrying a numeric code alongside a
// human-readable message.
type CoreError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *CoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("trigpeach: [%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("trigpeach: [%d] %s", e.Code, e.Message)
}

// New builds a CoreError, optionally attaching details.
func New(code int, message string, details ...string) error {
	err := &CoreError{Code: code, Message: message}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// Predefined sentinels. §7 names AllocationFailure and InvalidNonceSyntax as
// the core's error kinds; BadTrailer is an extra kind for malformed trailer
// input. DifficultyNotMet is a normal negative outcome (a bool), not an error.
var (
	ErrAllocationFailure  = New(CodeAllocationFailure, "allocation failure")
	ErrInvalidNonceSyntax = New(CodeInvalidNonceSyntax, "invalid nonce syntax")
	ErrBadTrailer         = New(CodeBadTrailer, "malformed trailer")
)
