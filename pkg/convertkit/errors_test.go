package convertkit

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	t.Run("with message", func(t *testing.T) {
		err := &APIError{
			StatusCode: http.StatusNotFound,
			ErrorType:  "Not Found",
			Message:    "The entity you were trying to find doesn't exist",
		}

		assert.Equal(t, "Not Found: The entity you were trying to find doesn't exist (status: 404)", err.Error())
	})

	t.Run("without message", func(t *testing.T) {
		err := &APIError{
			StatusCode: http.StatusUnauthorized,
			ErrorType:  "Authorization Failed",
		}

		assert.Equal(t, "Authorization Failed (status: 401)", err.Error())
	})
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	t.Run("documented shape", func(t *testing.T) {
		body := []byte(`{"error": "Authorization Failed", "message": "API Key not valid"}`)

		err := ParseAPIError(http.StatusUnauthorized, body)
		assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
		assert.Equal(t, "Authorization Failed", err.ErrorType)
		assert.Equal(t, "API Key not valid", err.Message)
	})

	t.Run("empty body falls back to status text", func(t *testing.T) {
		err := ParseAPIError(http.StatusBadGateway, nil)
		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
		assert.Equal(t, "Bad Gateway", err.ErrorType)
		assert.Empty(t, err.Message)
	})

	t.Run("non-JSON body falls back to status text", func(t *testing.T) {
		err := ParseAPIError(http.StatusInternalServerError, []byte("<html>oops</html>"))
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, "Internal Server Error", err.ErrorType)
	})
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	notFound := &APIError{StatusCode: http.StatusNotFound, ErrorType: "Not Found"}
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized, ErrorType: "Authorization Failed"}
	rateLimited := &APIError{StatusCode: http.StatusTooManyRequests, ErrorType: "Rate Limited"}

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unauthorized))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.False(t, IsUnauthorized(rateLimited))
	assert.True(t, IsRateLimited(rateLimited))
	assert.False(t, IsRateLimited(notFound))

	assert.False(t, IsNotFound(errors.New("plain error")))
	assert.False(t, IsNotFound(nil))
}

func TestErrorClassification_Wrapped(t *testing.T) {
	t.Parallel()

	apiErr := &APIError{StatusCode: http.StatusNotFound, ErrorType: "Not Found"}
	wrapped := fmt.Errorf("getting subscriber: %w", apiErr)

	assert.True(t, IsNotFound(wrapped))

	var target *APIError

	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, http.StatusNotFound, target.StatusCode)
}
