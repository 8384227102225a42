package convertkit

import (
	"context"
	"time"
)

// FormsClient provides access to form resources and their subscribe
// endpoints.
type FormsClient interface {
	List(ctx context.Context) ([]Form, error)
	Find(ctx context.Context, opts FindFormOptions) (*Form, error)
	Subscribe(ctx context.Context, formID int64, request *SubscribeRequest) (*Subscription, error)
	ListSubscriptions(ctx context.Context, formID int64, opts *SubscriptionListOptions) (*SubscriptionList, error)
}

// SequencesClient provides access to sequence (course) resources.
type SequencesClient interface {
	List(ctx context.Context) ([]Sequence, error)
	Subscribe(ctx context.Context, sequenceID int64, request *SubscribeRequest) (*Subscription, error)
	ListSubscriptions(ctx context.Context, sequenceID int64, opts *SubscriptionListOptions) (*SubscriptionList, error)
}

// TagsClient provides access to tag resources.
type TagsClient interface {
	List(ctx context.Context) ([]Tag, error)
	Create(ctx context.Context, request *TagCreateRequest) (*Tag, error)
	Subscribe(ctx context.Context, tagID int64, request *SubscribeRequest) (*Subscription, error)
	ListSubscriptions(ctx context.Context, tagID int64, opts *SubscriptionListOptions) (*SubscriptionList, error)
}

// SubscribersClient provides access to subscriber lookups. Both
// operations require the API secret.
type SubscribersClient interface {
	List(ctx context.Context, opts *SubscriberListOptions) (*SubscriberList, error)
	Get(ctx context.Context, subscriberID int64) (*Subscriber, error)
}

// AccountClient provides access to the account endpoint.
type AccountClient interface {
	GetAccount(ctx context.Context) (*Account, error)
}

// Client is the full ConvertKit v3 API surface. A concrete
// implementation is constructed by the ckclient package.
type Client interface {
	Forms() FormsClient
	Sequences() SequencesClient
	Tags() TagsClient
	Subscribers() SubscribersClient

	AccountClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Credentials
//
// APIKey is required on every request and rides as the api_key query
// parameter. APISecret is optional; endpoints that the API documents as
// secret-only (account, subscriber listing, per-resource subscription
// listing) send api_secret instead and fail fast with
// ErrAPISecretRequired when it is not configured.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via the context
// passed to client methods. The client performs no retries unless
// RetryMax is set; each call maps to exactly one remote operation by
// default.
type Config struct {
	// APIKey: account API key, sent with every request.
	APIKey string
	// APISecret: account API secret for the secret-only endpoints.
	APISecret string
	// BaseURL: API base URL. Defaults to https://api.convertkit.com/v3.
	// ckclient.New normalizes this value by trimming a trailing slash
	// and adding "https://" if no scheme is present.
	BaseURL string

	// HTTPTimeout: optional default HTTP timeout applied by the
	// transport when no context deadline is set.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures
	// (>=500, 429, and connection errors). Zero means no retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Interceptors: optional chain run around every request, for custom
	// headers, tracing, or metrics. See NewInterceptorChain.
	Interceptors *InterceptorChain
}
