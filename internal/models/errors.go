package models

import "errors"

// Sentinel errors returned by repositories and services. Handlers map these
// to HTTP status codes at the boundary.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("a record with this email already exists")
	ErrInvalidID      = errors.New("invalid ID format")
)
