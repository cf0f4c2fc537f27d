package adapter

import (
	"errors"
)

// GenericErrorMessage is shown when nothing more specific is known.
const GenericErrorMessage = "Something went wrong"

// FormatError turns err into user-facing text. It prefers the server's
// message field, then the server's error field, then the transport error
// text, then [GenericErrorMessage].
func FormatError(err error) string {
	if err == nil {
		return GenericErrorMessage
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Body.Message != "" {
			return apiErr.Body.Message
		}
		if apiErr.Body.Error != "" {
			return apiErr.Body.Error
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericErrorMessage
}
