// Package client implements the convertkit.Client interface.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kitforge-io/convertkit/internal/auth"
	"github.com/kitforge-io/convertkit/internal/constants"
	"github.com/kitforge-io/convertkit/internal/http"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// Client implements the convertkit.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     convertkit.Logger

	// Resource clients
	forms       convertkit.FormsClient
	sequences   convertkit.SequencesClient
	tags        convertkit.TagsClient
	subscribers convertkit.SubscribersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *convertkit.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new ConvertKit API client.
func New(config *convertkit.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, convertkit.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	credentials := auth.NewStaticCredentials(config.APIKey, config.APISecret)
	httpClient := http.NewClient(baseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithCredentials creates a new ConvertKit API client with a custom
// credential provider.
func NewWithCredentials(config *convertkit.Config, credentials auth.Credentials) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetAccount implements convertkit.AccountClient.GetAccount. The
// endpoint requires the API secret.
func (c *Client) GetAccount(ctx context.Context) (*convertkit.Account, error) {
	resp, err := c.httpClient.GetSecret(ctx, "/account", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account convertkit.Account

	err = json.Unmarshal(resp.Body, &account)
	if err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}

// Resource client accessors

// Forms implements convertkit.Client.Forms.
func (c *Client) Forms() convertkit.FormsClient {
	return c.forms
}

// Sequences implements convertkit.Client.Sequences.
func (c *Client) Sequences() convertkit.SequencesClient {
	return c.sequences
}

// Tags implements convertkit.Client.Tags.
func (c *Client) Tags() convertkit.TagsClient {
	return c.tags
}

// Subscribers implements convertkit.Client.Subscribers.
func (c *Client) Subscribers() convertkit.SubscribersClient {
	return c.subscribers
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.forms = NewFormsClient(c.httpClient)
	c.sequences = NewSequencesClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.subscribers = NewSubscribersClient(c.httpClient)
}

// loggerAdapter adapts convertkit.Logger to http.Logger.
type loggerAdapter struct {
	logger convertkit.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
