package service

import (
	"errors"
	"fmt"
)

// Business errors returned by Register and Login. Message text is user-facing
// and mirrors the API responses.
var (
	// ErrNameExists and ErrEmailExists signal a uniqueness conflict at signup.
	ErrNameExists  = errors.New("this name already exists")
	ErrEmailExists = errors.New("this email already exists")

	// ErrNameNotFound signals a login attempt for an unknown name.
	ErrNameNotFound = errors.New("name does not exist")

	// ErrPasswordMismatch signals a failed password check at login.
	ErrPasswordMismatch = errors.New("password does not match")
)

// ValidationError reports an empty required field by name.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s field is empty", e.Field)
}
