package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kitforge-io/convertkit/internal/http"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// SequencesClient implements convertkit.SequencesClient. The v3 API
// exposes sequences under the legacy /courses paths.
type SequencesClient struct {
	httpClient *http.Client
}

// NewSequencesClient creates a new sequences client.
func NewSequencesClient(httpClient *http.Client) *SequencesClient {
	return &SequencesClient{
		httpClient: httpClient,
	}
}

// List implements convertkit.SequencesClient.List.
func (c *SequencesClient) List(ctx context.Context) ([]convertkit.Sequence, error) {
	resp, err := c.httpClient.Get(ctx, "/courses", nil)
	if err != nil {
		return nil, fmt.Errorf("listing sequences: %w", err)
	}

	var envelope struct {
		Courses []convertkit.Sequence `json:"courses"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing sequences list: %w", err)
	}

	return envelope.Courses, nil
}

// Subscribe implements convertkit.SequencesClient.Subscribe.
func (c *SequencesClient) Subscribe(ctx context.Context, sequenceID int64, request *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
	return subscribeResource(ctx, c.httpClient, "/courses", sequenceID, request)
}

// ListSubscriptions implements convertkit.SequencesClient.ListSubscriptions.
func (c *SequencesClient) ListSubscriptions(ctx context.Context, sequenceID int64, opts *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
	return listResourceSubscriptions(ctx, c.httpClient, "/courses", sequenceID, opts)
}
