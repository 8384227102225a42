package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kitforge-io/convertkit/internal/http"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// TagsClient implements convertkit.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// List implements convertkit.TagsClient.List.
func (c *TagsClient) List(ctx context.Context) ([]convertkit.Tag, error) {
	resp, err := c.httpClient.Get(ctx, "/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var envelope struct {
		Tags []convertkit.Tag `json:"tags"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing tags list: %w", err)
	}

	return envelope.Tags, nil
}

// Create implements convertkit.TagsClient.Create.
func (c *TagsClient) Create(ctx context.Context, request *convertkit.TagCreateRequest) (*convertkit.Tag, error) {
	if request == nil || request.Name == "" {
		return nil, convertkit.ErrTagNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/tags", request)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	var tag convertkit.Tag

	err = json.Unmarshal(resp.Body, &tag)
	if err != nil {
		return nil, fmt.Errorf("parsing tag response: %w", err)
	}

	return &tag, nil
}

// Subscribe implements convertkit.TagsClient.Subscribe.
func (c *TagsClient) Subscribe(ctx context.Context, tagID int64, request *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
	return subscribeResource(ctx, c.httpClient, "/tags", tagID, request)
}

// ListSubscriptions implements convertkit.TagsClient.ListSubscriptions.
func (c *TagsClient) ListSubscriptions(ctx context.Context, tagID int64, opts *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
	return listResourceSubscriptions(ctx, c.httpClient, "/tags", tagID, opts)
}
