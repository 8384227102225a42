package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kitforge-io/convertkit/internal/http"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// FormsClient implements convertkit.FormsClient.
type FormsClient struct {
	httpClient *http.Client
}

// NewFormsClient creates a new forms client.
func NewFormsClient(httpClient *http.Client) *FormsClient {
	return &FormsClient{
		httpClient: httpClient,
	}
}

// List implements convertkit.FormsClient.List.
func (c *FormsClient) List(ctx context.Context) ([]convertkit.Form, error) {
	resp, err := c.httpClient.Get(ctx, "/forms", nil)
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}

	var envelope struct {
		Forms []convertkit.Form `json:"forms"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing forms list: %w", err)
	}

	return envelope.Forms, nil
}

// Find implements convertkit.FormsClient.Find. The API has no form
// lookup endpoint, so the match runs client-side over List.
func (c *FormsClient) Find(ctx context.Context, opts convertkit.FindFormOptions) (*convertkit.Form, error) {
	if opts.ID == 0 && opts.Name == "" {
		return nil, convertkit.ErrFormSelectorNeeded
	}

	forms, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []convertkit.Form

	for _, form := range forms {
		if opts.ID != 0 && form.ID != opts.ID {
			continue
		}

		if opts.Name != "" && form.Name != opts.Name {
			continue
		}

		matches = append(matches, form)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: id=%d name=%q", convertkit.ErrFormNotFound, opts.ID, opts.Name)
	}

	if len(matches) > 1 {
		return nil, fmt.Errorf("%w: id=%d name=%q", convertkit.ErrAmbiguousFormMatch, opts.ID, opts.Name)
	}

	return &matches[0], nil
}

// Subscribe implements convertkit.FormsClient.Subscribe.
func (c *FormsClient) Subscribe(ctx context.Context, formID int64, request *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
	return subscribeResource(ctx, c.httpClient, "/forms", formID, request)
}

// ListSubscriptions implements convertkit.FormsClient.ListSubscriptions.
func (c *FormsClient) ListSubscriptions(ctx context.Context, formID int64, opts *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
	return listResourceSubscriptions(ctx, c.httpClient, "/forms", formID, opts)
}
