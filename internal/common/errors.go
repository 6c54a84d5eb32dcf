// Package common defines shared sentinel errors and small helpers used
// across DevLearn layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors. Field details travel in validation.Errors, which
	// wraps this value.
	ErrValidation = errors.New("validation error")

	// Account errors.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Identity provider errors.
	ErrNoLinkedAccount = errors.New("no google account found, please sign up first")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)
