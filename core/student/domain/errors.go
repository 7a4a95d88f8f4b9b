package domain

import "errors"

var (
	ErrDuplicateEmail     = errors.New("student with the requested email already exists")
	ErrInvalidData        = errors.New("invalid data provided for student operations")
	ErrUnhandled          = errors.New("unexpected error")
	ErrStudentNotFound    = errors.New("student not found")
	ErrAddressUnavailable = errors.New("address service unavailable")
)
