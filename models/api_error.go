package models

// APIErrorResponse is the structured error body returned by the backend.
type APIErrorResponse struct {
	Timestamp string            `json:"timestamp,omitempty"`
	Status    int               `json:"status,omitempty"`
	Error     string            `json:"error,omitempty"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}
