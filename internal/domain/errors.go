package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrDuplicateSlug   = errors.New("slug already in use")
	ErrDuplicateEmail  = errors.New("email already in use")
	ErrEmailNotAllowed = errors.New("email address is not allowed to register")
)
