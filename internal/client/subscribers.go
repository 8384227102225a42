package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kitforge-io/convertkit/internal/http"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// SubscribersClient implements convertkit.SubscribersClient. Every
// operation here requires the API secret.
type SubscribersClient struct {
	httpClient *http.Client
}

// NewSubscribersClient creates a new subscribers client.
func NewSubscribersClient(httpClient *http.Client) *SubscribersClient {
	return &SubscribersClient{
		httpClient: httpClient,
	}
}

// List implements convertkit.SubscribersClient.List.
func (c *SubscribersClient) List(ctx context.Context, opts *convertkit.SubscriberListOptions) (*convertkit.SubscriberList, error) {
	var query url.Values
	if opts != nil {
		query = opts.ToValues()
	}

	resp, err := c.httpClient.GetSecret(ctx, "/subscribers", query)
	if err != nil {
		return nil, fmt.Errorf("listing subscribers: %w", err)
	}

	var list convertkit.SubscriberList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing subscribers list: %w", err)
	}

	return &list, nil
}

// Get implements convertkit.SubscribersClient.Get.
func (c *SubscribersClient) Get(ctx context.Context, subscriberID int64) (*convertkit.Subscriber, error) {
	path := "/subscribers/" + strconv.FormatInt(subscriberID, 10)

	resp, err := c.httpClient.GetSecret(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscriber: %w", err)
	}

	var envelope struct {
		Subscriber convertkit.Subscriber `json:"subscriber"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing subscriber response: %w", err)
	}

	return &envelope.Subscriber, nil
}
