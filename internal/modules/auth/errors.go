package auth

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidIdentifier  = errors.New("identifier is neither an email nor a phone number")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUploadFailed       = errors.New("file upload failed")
	ErrPersistenceFailed  = errors.New("could not persist account")

	ErrInvalidOTP      = errors.New("invalid verification code")
	ErrOTPExpired      = errors.New("verification code expired")
	ErrNoPendingOTP    = errors.New("no verification code issued")
	ErrAlreadyVerified = errors.New("email already verified")
)

// ValidationError reports which field failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
