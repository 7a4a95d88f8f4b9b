package rest

import (
	"errors"
	"net/http"

	"studentapi/core/student/domain"
	"studentapi/modules/api/envelope"
)

const (
	msgNotFound        = "Student not found"
	msgDuplicateEmail  = "Student with this email already exists"
	msgInternal        = "Internal server error"
	msgValidationError = "Validation Error"
)

// writeDomainError is the sole translator from domain failure kinds to
// HTTP status codes. Unexpected errors stay deliberately generic so
// internals never leak to clients.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrStudentNotFound):
		envelope.WriteError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrDuplicateEmail):
		envelope.WriteError(w, http.StatusConflict, msgDuplicateEmail)
	default:
		envelope.WriteError(w, http.StatusInternalServerError, msgInternal)
	}
}

// writeValidationError short-circuits the request before the service
// is invoked, enumerating one message per violated field.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	envelope.WriteFailure(w, http.StatusBadRequest, msgValidationError, fields)
}
