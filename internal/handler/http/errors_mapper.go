package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrContactNameRequired:    http.StatusBadRequest,
	service.ErrContactEmailRequired:   http.StatusBadRequest,
	service.ErrContactEmailInvalid:    http.StatusBadRequest,
	service.ErrContactSubjectRequired: http.StatusBadRequest,
	service.ErrContactBodyRequired:    http.StatusBadRequest,

	adapter.ErrBadRequest: http.StatusBadRequest,
}

// statusFromError maps validation failures to 400. Anything else came from
// the backend and answers 502.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadGateway
}
