package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

func TestSequencesClient_List(t *testing.T) {
	t.Parallel()

	t.Run("successful listing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/courses", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"courses": []convertkit.Sequence{
					{ID: 1, Name: "Welcome Drip", Hold: false, Repeat: false},
					{ID: 2, Name: "Onboarding", Hold: true, Repeat: false},
				},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		sequences, err := client.Sequences().List(context.Background())
		require.NoError(t, err)
		require.Len(t, sequences, 2)
		assert.Equal(t, "Welcome Drip", sequences[0].Name)
		assert.True(t, sequences[1].Hold)
	})

	t.Run("empty listing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"courses": []convertkit.Sequence{},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		sequences, err := client.Sequences().List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, sequences)
	})
}

func TestSequencesClient_Subscribe(t *testing.T) {
	t.Parallel()

	RunSubscribeTests(t, "/courses", func(c *Client) func(context.Context, int64, *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
		return c.Sequences().Subscribe
	})
}

func TestSequencesClient_ListSubscriptions(t *testing.T) {
	t.Parallel()

	RunListSubscriptionsTests(t, "/courses", func(c *Client) func(context.Context, int64, *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
		return c.Sequences().ListSubscriptions
	})
}
