package github

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
)

func TestAPIErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status and message",
			err:      &APIError{StatusCode: 401, Message: "Bad credentials"},
			expected: "GitHub API error: 401 - Bad credentials",
		},
		{
			name:     "status only",
			err:      &APIError{StatusCode: 500},
			expected: "GitHub API error: 500",
		},
		{
			name:     "connection failure",
			err:      &APIError{Message: "dial tcp: connection refused"},
			expected: "connection error: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapAPIError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, WrapAPIError(nil))
	})

	t.Run("error response keeps status and message", func(t *testing.T) {
		ghErr := &github.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusForbidden},
			Message:  "Must have admin rights to Repository.",
		}

		apiErr := WrapAPIError(ghErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Equal(t, "Must have admin rights to Repository.", apiErr.Message)
		assert.Equal(t, ghErr, apiErr.Cause)
	})

	t.Run("already wrapped passes through", func(t *testing.T) {
		original := &APIError{StatusCode: 404, Message: "Not Found"}
		assert.Same(t, original, WrapAPIError(original))
	})

	t.Run("plain error becomes connection error", func(t *testing.T) {
		cause := fmt.Errorf("dial tcp 127.0.0.1:443: connect: connection refused")

		apiErr := WrapAPIError(cause)
		assert.Zero(t, apiErr.StatusCode)
		assert.Contains(t, apiErr.Error(), "connection error")
		assert.True(t, errors.Is(apiErr, cause))
	})
}

func TestIsNetworkError(t *testing.T) {
	networkErrors := []string{
		"dial tcp 127.0.0.1:443: connect: connection refused",
		"read tcp: connection reset by peer",
		"Get \"https://api.github.com\": context deadline exceeded (Client.Timeout exceeded)",
		"lookup api.github.com: no such host",
		"i/o timeout",
	}

	for _, msg := range networkErrors {
		assert.True(t, IsNetworkError(fmt.Errorf("%s", msg)), "expected %q to classify as network error", msg)
	}

	assert.False(t, IsNetworkError(nil))
	assert.False(t, IsNetworkError(fmt.Errorf("validation failed")))
	assert.False(t, IsNetworkError(&APIError{StatusCode: 401, Message: "Bad credentials"}))
}
