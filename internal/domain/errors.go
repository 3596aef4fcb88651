package domain

import "errors"

var (
	// ErrNotFound is returned when a receipt, vehicle, or user is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden is returned when the session role does not permit the
	// requested operation.
	ErrForbidden = errors.New("forbidden")
)
