package auth

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid second factor")
	ErrWrongStep          = errors.New("submission does not match the current sign-in step")
	ErrInvalidToken       = errors.New("invalid session token")
)

// Messages shown to the user on a failed step.
const (
	MsgInvalidCredentials = "Invalid email or password."
	MsgInvalidCode        = "Invalid two-factor authentication code."
)

// ValidationError is a recoverable mismatch: the flow keeps its state and
// Message is shown to the user for a retry.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
