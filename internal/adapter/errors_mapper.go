package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-portfolio/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{
		Status: resp.StatusCode(),
		Raw:    strings.TrimSpace(string(resp.Body())),
	}
	var body models.APIErrorResponse
	if json.Unmarshal(resp.Body(), &body) == nil {
		apiErr.Body = body
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusConflict:
		apiErr.kind = ErrConflict
	case http.StatusBadGateway:
		apiErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		apiErr.kind = ErrInternalServerError
	default:
		apiErr.kind = ErrUnexpectedStatus
	}

	return apiErr
}
