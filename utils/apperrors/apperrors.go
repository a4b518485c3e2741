package apperrors

import (
	"errors"
	"net/http"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("requested resource not found")
	ErrForbidden  = errors.New("forbidden access")
	ErrConflict   = errors.New("resource conflict")
	ErrState      = errors.New("invalid state transition")
	ErrInternal   = errors.New("internal server error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrState) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
