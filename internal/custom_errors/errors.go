package custom_errors

import "errors"

// Post errors
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrPostValidation = errors.New("post validation failed")
)

// Request errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Internal errors
var (
	ErrInternal = errors.New("internal error")
)
