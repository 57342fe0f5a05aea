package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoUnifier     = errors.New("no unifier")
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
)
