package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthorized is returned when the API answers 401. The stored session has
// already been cleared by the time the caller sees it.
var ErrUnauthorized = errors.New("api: unauthorized")

// maxErrorBodySize caps how much of a non-JSON error body ends up in HTTPError.
const maxErrorBodySize = 500

// HTTPError is a non-2xx answer other than 401.
type HTTPError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string // the API's "message" field, or the truncated body
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == 404
}

func newHTTPError(method, path string, status int, body []byte) *HTTPError {
	var payload struct {
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		msg = payload.Message
	} else {
		msg = truncate(strings.TrimSpace(string(body)), maxErrorBodySize)
	}
	return &HTTPError{StatusCode: status, Method: method, Path: path, Message: msg}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
