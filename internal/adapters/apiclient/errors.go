// internal/adapters/apiclient/errors.go
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-2xx answer from the backend. Message follows the
// backend body: its "error" field, else "message", else a status line.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the backend status code
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

func newAPIError(status int, body []byte) *APIError {
	msg := fmt.Sprintf("HTTP error! status: %d", status)

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		if s, ok := payload["error"].(string); ok && strings.TrimSpace(s) != "" {
			msg = s
		} else if s, ok := payload["message"].(string); ok && strings.TrimSpace(s) != "" {
			msg = s
		}
	}

	return &APIError{
		StatusCode: status,
		Message:    msg,
		Body:       body,
	}
}

// StatusCode returns the backend status carried by err, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
