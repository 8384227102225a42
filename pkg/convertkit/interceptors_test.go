package convertkit_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

var errInterceptorRejected = errors.New("rejected")

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := convertkit.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *convertkit.Request) error {
		order = append(order, "first")
		req.Headers.Set("X-First", "1")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *convertkit.Request) error {
		order = append(order, "second")

		return nil
	})

	req := &convertkit.Request{
		Method:  "GET",
		Path:    "/forms",
		Headers: http.Header{},
	}

	err := chain.ExecuteRequestInterceptors(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, "1", req.Headers.Get("X-First"))
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	t.Parallel()

	chain := convertkit.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *convertkit.Request) error {
		return errInterceptorRejected
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &convertkit.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInterceptorRejected)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := convertkit.NewInterceptorChain()

	var observedStatus int

	chain.AddResponseInterceptor(func(ctx context.Context, req *convertkit.Request, resp *convertkit.Response) error {
		observedStatus = resp.StatusCode

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(),
		&convertkit.Request{Method: "GET", Path: "/tags"},
		&convertkit.Response{StatusCode: 200},
	)
	require.NoError(t, err)
	assert.Equal(t, 200, observedStatus)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := convertkit.HeaderInterceptor(map[string]string{
		"X-Request-ID": "abc-123",
	})

	req := &convertkit.Request{Method: "GET", Path: "/forms"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", req.Headers.Get("X-Request-ID"))
}
