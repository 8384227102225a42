package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge-io/convertkit/internal/auth"
	internalhttp "github.com/kitforge-io/convertkit/internal/http"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// NewTestClient creates a client against the given base URL with fixed
// test credentials (key and secret).
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, auth.NewStaticCredentials("test-key", "test-secret"))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// NewTestClientWithoutSecret creates a client with only an API key, for
// exercising the secret-required failure paths.
func NewTestClientWithoutSecret(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, auth.NewStaticCredentials("test-key", ""))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// RunSubscribeTests exercises the shared subscribe behavior for a
// resource type. Forms, sequences, and tags expose the same endpoint
// shape, so their tests share this runner.
func RunSubscribeTests(
	t *testing.T,
	basePath string,
	subscribeFunc func(*Client) func(context.Context, int64, *convertkit.SubscribeRequest) (*convertkit.Subscription, error),
) {
	t.Helper()

	t.Run("successful subscribe", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, basePath+"/5/subscribe", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))

			var body convertkit.SubscribeRequest

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "a@b.com", body.Email)

			envelope := map[string]interface{}{
				"subscription": convertkit.Subscription{
					ID:             1,
					State:          "active",
					SubscribableID: 5,
					Subscriber: convertkit.Subscriber{
						ID:           1,
						EmailAddress: body.Email,
						FirstName:    body.FirstName,
					},
				},
			}

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(envelope)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)
		subscribeFn := subscribeFunc(client)

		subscription, err := subscribeFn(context.Background(), 5, &convertkit.SubscribeRequest{
			Email:     "a@b.com",
			FirstName: "Ada",
		})
		require.NoError(t, err)
		require.NotNil(t, subscription)
		assert.Equal(t, int64(1), subscription.ID)
		assert.Equal(t, "a@b.com", subscription.Subscriber.EmailAddress)
	})

	t.Run("missing email", func(t *testing.T) {
		client := NewTestClient("http://127.0.0.1:0")
		subscribeFn := subscribeFunc(client)

		subscription, err := subscribeFn(context.Background(), 5, &convertkit.SubscribeRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, convertkit.ErrEmailRequired)
		assert.Nil(t, subscription)
	})

	t.Run("unknown resource id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"error":   "Not Found",
				"message": "The entity you were trying to find doesn't exist",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)
		subscribeFn := subscribeFunc(client)

		subscription, err := subscribeFn(context.Background(), 999, &convertkit.SubscribeRequest{Email: "a@b.com"})
		require.Error(t, err)
		assert.True(t, convertkit.IsNotFound(err))
		assert.Nil(t, subscription)
	})
}

// RunListSubscriptionsTests exercises the shared subscription listing
// behavior for a resource type.
func RunListSubscriptionsTests(
	t *testing.T,
	basePath string,
	listFunc func(*Client) func(context.Context, int64, *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error),
) {
	t.Helper()

	t.Run("successful listing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, basePath+"/5/subscriptions", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-secret", request.URL.Query().Get("api_secret"))
			assert.Equal(t, "desc", request.URL.Query().Get("sort_order"))

			list := convertkit.SubscriptionList{
				TotalSubscriptions: 1,
				Page:               1,
				TotalPages:         1,
				Subscriptions: []convertkit.Subscription{
					{
						ID:    10,
						State: "active",
						Subscriber: convertkit.Subscriber{
							ID:           7,
							EmailAddress: "a@b.com",
						},
					},
				},
			}

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(list)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)
		listFn := listFunc(client)

		list, err := listFn(context.Background(), 5, &convertkit.SubscriptionListOptions{SortOrder: "desc"})
		require.NoError(t, err)
		require.NotNil(t, list)
		assert.Equal(t, 1, list.TotalSubscriptions)
		require.Len(t, list.Subscriptions, 1)
		assert.Equal(t, "a@b.com", list.Subscriptions[0].Subscriber.EmailAddress)
	})

	t.Run("secret not configured", func(t *testing.T) {
		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewTestClientWithoutSecret(server.URL)
		listFn := listFunc(client)

		list, err := listFn(context.Background(), 5, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrAPISecretRequired)
		assert.Nil(t, list)
		assert.Equal(t, 0, requests)
	})
}
