package transport

import "fmt"

// APIError is returned when the API answers with a 4xx or 5xx status.
// Response holds the decoded error body for diagnostics.
type APIError struct {
	StatusCode int
	Message    string
	Response   map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("prelude: API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}
