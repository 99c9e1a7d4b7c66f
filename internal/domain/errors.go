package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrValidation        = errors.New("validation failed")
)
