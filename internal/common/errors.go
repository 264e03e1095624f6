// Package common defines sentinel errors shared by the employee and user
// stores, the session manager and the CLI. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrValidation = errors.New("required field is empty")
	ErrNotFound   = errors.New("not found")

	// Employee-specific errors.
	ErrDuplicateID = errors.New("employee id already exists")

	// User-specific errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session errors.
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidSearchField = errors.New("unknown search field")
)
