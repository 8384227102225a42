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

// Forms, sequences, and tags share the same subscribe and subscription
// listing endpoints under their respective path prefixes.

// subscriptionEnvelope is the {"subscription": ...} wrapper the
// subscribe endpoints return.
type subscriptionEnvelope struct {
	Subscription convertkit.Subscription `json:"subscription"`
}

// subscribeResource posts a subscribe request to
// {basePath}/{id}/subscribe and unwraps the subscription envelope.
func subscribeResource(ctx context.Context, httpClient *http.Client, basePath string, resourceID int64, request *convertkit.SubscribeRequest) (*convertkit.Subscription, error) {
	if request == nil || request.Email == "" {
		return nil, convertkit.ErrEmailRequired
	}

	path := basePath + "/" + strconv.FormatInt(resourceID, 10) + "/subscribe"

	resp, err := httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", basePath, err)
	}

	var envelope subscriptionEnvelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription response: %w", err)
	}

	return &envelope.Subscription, nil
}

// listResourceSubscriptions fetches {basePath}/{id}/subscriptions. The
// endpoint requires the API secret.
func listResourceSubscriptions(ctx context.Context, httpClient *http.Client, basePath string, resourceID int64, opts *convertkit.SubscriptionListOptions) (*convertkit.SubscriptionList, error) {
	path := basePath + "/" + strconv.FormatInt(resourceID, 10) + "/subscriptions"

	var query url.Values
	if opts != nil {
		query = opts.ToValues()
	}

	resp, err := httpClient.GetSecret(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s subscriptions: %w", basePath, err)
	}

	var list convertkit.SubscriptionList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing subscriptions list: %w", err)
	}

	return &list, nil
}
