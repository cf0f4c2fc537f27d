package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/models"
)

// Sentinel errors matched by status code. Every non-2xx response is returned
// as an [*APIError] whose Unwrap yields one of these.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx backend response.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Body is the decoded structured error, zero when the body was not JSON.
	Body models.APIErrorResponse
	// Raw is the trimmed response body.
	Raw string

	kind error
}

func (e *APIError) Error() string {
	detail := e.Body.Message
	if detail == "" {
		detail = e.Body.Error
	}
	if detail == "" {
		detail = e.Raw
	}
	if detail == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.Status)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.Status, detail)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
