package github

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v66/github"
)

// APIError represents a failed GitHub API call. For HTTP-level failures it
// carries the status code and, when the response body contained one, the API
// message. Connection-level failures have StatusCode 0 and a wrapped cause.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Cause      error  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("GitHub API error: %d - %s", e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("GitHub API error: %d", e.StatusCode)
	default:
		return fmt.Sprintf("connection error: %s", e.Message)
	}
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// WrapAPIError converts a go-github error into an *APIError. Error responses
// keep their status code and message; everything else (connection refused,
// timeouts, DNS failures) becomes a connection error.
func WrapAPIError(err error) *APIError {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}

	if ghErr, ok := err.(*github.ErrorResponse); ok {
		apiErr := &APIError{
			Message: ghErr.Message,
			Cause:   err,
		}
		if ghErr.Response != nil {
			apiErr.StatusCode = ghErr.Response.StatusCode
		}
		return apiErr
	}

	if rateErr, ok := err.(*github.RateLimitError); ok {
		apiErr := &APIError{
			Message: rateErr.Message,
			Cause:   err,
		}
		if rateErr.Response != nil {
			apiErr.StatusCode = rateErr.Response.StatusCode
		}
		return apiErr
	}

	return &APIError{
		Message: err.Error(),
		Cause:   err,
	}
}

// IsNetworkError checks if an error looks like a network-level failure
// rather than an API response.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no such host",
		"timeout",
		"dial tcp",
		"i/o timeout",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}
