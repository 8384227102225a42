package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge-io/convertkit/internal/auth"
	ckhttp "github.com/kitforge-io/convertkit/internal/http"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/forms", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"name": "Landing Page"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		creds := auth.NewStaticCredentials("test-key", "")
		client := ckhttp.NewClient(server.URL, creds)

		req := &ckhttp.Request{
			Method: "GET",
			Path:   "/forms",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "Landing Page", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/subscribers", request.URL.Path)
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := ckhttp.NewClient(server.URL, nil)

		req := &ckhttp.Request{
			Method: "GET",
			Path:   "/subscribers",
			Query:  url.Values{"page": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "a@b.com", body["email"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := ckhttp.NewClient(server.URL, nil)

		req := &ckhttp.Request{
			Method: "POST",
			Path:   "/forms/1/subscribe",
			Body:   map[string]string{"email": "a@b.com"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("secret scope uses api_secret", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "test-secret", request.URL.Query().Get("api_secret"))
			assert.Empty(t, request.URL.Query().Get("api_key"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		creds := auth.NewStaticCredentials("test-key", "test-secret")
		client := ckhttp.NewClient(server.URL, creds)

		resp, err := client.GetSecret(context.Background(), "/account", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("secret scope without secret fails fast", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		creds := auth.NewStaticCredentials("test-key", "")
		client := ckhttp.NewClient(server.URL, creds)

		_, err := client.GetSecret(context.Background(), "/account", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrAPISecretRequired)
		assert.Equal(t, 0, requests)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)

			response := convertkit.APIError{
				ErrorType: "Not Found",
				Message:   "The entity you were trying to find doesn't exist",
			}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := ckhttp.NewClient(server.URL, nil)

		req := &ckhttp.Request{
			Method: "GET",
			Path:   "/forms/999/subscribe",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &convertkit.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "Not Found", apiErr.ErrorType)
		assert.True(t, convertkit.IsNotFound(err))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := ckhttp.NewClient(server.URL, nil)

		req := &ckhttp.Request{
			Method: "GET",
			Path:   "/forms",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := ckhttp.NewClient(server.URL, nil, ckhttp.WithLogger(logger), ckhttp.WithDebug(true))

		req := &ckhttp.Request{
			Method: "GET",
			Path:   "/forms",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*ckhttp.Client, context.Context) (*ckhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *ckhttp.Client, ctx context.Context) (*ckhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *ckhttp.Client, ctx context.Context) (*ckhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *ckhttp.Client, ctx context.Context) (*ckhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *ckhttp.Client, ctx context.Context) (*ckhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := ckhttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()
	t.Run("request interceptor headers reach the wire", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "abc-123", request.Header.Get("X-Request-ID"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		chain := convertkit.NewInterceptorChain()
		chain.AddRequestInterceptor(convertkit.HeaderInterceptor(map[string]string{
			"X-Request-ID": "abc-123",
		}))

		client := ckhttp.NewClient(server.URL, nil, ckhttp.WithInterceptors(chain))

		resp, err := client.Get(context.Background(), "/forms", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("response interceptor observes API errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		var observed *convertkit.Response

		chain := convertkit.NewInterceptorChain()
		chain.AddResponseInterceptor(func(ctx context.Context, req *convertkit.Request, resp *convertkit.Response) error {
			observed = resp

			return nil
		})

		client := ckhttp.NewClient(server.URL, nil, ckhttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/forms", nil)
		require.Error(t, err)
		require.NotNil(t, observed)
		assert.Equal(t, 404, observed.StatusCode)
		assert.Error(t, observed.Error)
	})

	t.Run("request interceptor failure aborts the request", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		chain := convertkit.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *convertkit.Request) error {
			return errRejectedByInterceptor
		})

		client := ckhttp.NewClient(server.URL, nil, ckhttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/forms", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errRejectedByInterceptor)
		assert.Equal(t, 0, requests)
	})
}

var errRejectedByInterceptor = errors.New("rejected by interceptor")

func TestClient_RetryDisabledByDefault(t *testing.T) {
	t.Parallel()

	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts++
		writer.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := ckhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/test", nil)
	require.Error(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, 1, attempts)
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors when configured", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := ckhttp.NewClient(server.URL, nil, ckhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := ckhttp.NewClient(server.URL, nil, ckhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}
