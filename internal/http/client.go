// Package http implements the HTTP transport for the ConvertKit API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/kitforge-io/convertkit/internal/auth"
	"github.com/kitforge-io/convertkit/internal/constants"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// AuthScope selects which credential a request carries. The zero value
// is the API key, which every documented endpoint accepts or requires.
type AuthScope int

const (
	// AuthAPIKey sends the account API key as the api_key query parameter.
	AuthAPIKey AuthScope = iota
	// AuthAPISecret sends the account API secret as the api_secret
	// query parameter. Secret-only endpoints reject the key.
	AuthAPISecret
	// AuthNone sends no credential.
	AuthNone
)

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	Auth    AuthScope
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP client for the ConvertKit API. It injects
// credentials as query parameters, encodes JSON bodies, and maps non-2xx
// responses to convertkit.APIError. Retries are disabled unless
// configured via WithRetryConfig.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	credentials  auth.Credentials
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *convertkit.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures (connection
// errors, 429, and 5xx).
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithInterceptors sets the interceptor chain run around each request.
func WithInterceptors(chain *convertkit.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithHTTPTimeout sets the transport timeout applied when the caller
// sets no context deadline.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client for the given base URL.
func NewClient(baseURL string, credentials auth.Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final response once attempts are exhausted so 5xx
	// bodies still reach the API error mapping below.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     baseURL,
		httpClient:  retryClient,
		credentials: credentials,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and returns the response. Non-2xx responses are
// returned together with a *convertkit.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	icReq, err := c.runRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		})
	}

	var apiErr error
	if resp.StatusCode >= constants.HTTPStatusErrorThreshold {
		apiErr = convertkit.ParseAPIError(resp.StatusCode, body)
	}

	err = c.runResponseInterceptors(ctx, icReq, resp, apiErr)
	if err != nil {
		return nil, err
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

// runRequestInterceptors executes the request interceptor chain and
// merges any headers the interceptors set into the outgoing request.
func (c *Client) runRequestInterceptors(ctx context.Context, req *Request) (*convertkit.Request, error) {
	if c.interceptors == nil {
		return nil, nil
	}

	icReq := &convertkit.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: http.Header{},
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, icReq)
	if err != nil {
		return nil, err
	}

	for key := range icReq.Headers {
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}

		req.Headers[key] = icReq.Headers.Get(key)
	}

	return icReq, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, icReq *convertkit.Request, resp *Response, apiErr error) error {
	if c.interceptors == nil {
		return nil
	}

	icResp := &convertkit.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      apiErr,
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, icReq, icResp)
}

// buildRequest assembles the outgoing request: URL, credentials, body,
// and headers. Credentials are never logged.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	query := url.Values{}
	for key, vals := range req.Query {
		query[key] = vals
	}

	err := c.injectCredentials(ctx, req.Auth, query)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + req.Path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var rawBody []byte

	if req.Body != nil {
		rawBody, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(rawBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

func (c *Client) injectCredentials(ctx context.Context, scope AuthScope, query url.Values) error {
	if c.credentials == nil || scope == AuthNone {
		return nil
	}

	switch scope {
	case AuthAPISecret:
		secret, err := c.credentials.APISecret(ctx)
		if err != nil {
			return fmt.Errorf("getting API secret: %w", err)
		}

		query.Set(constants.APISecretParam, secret)
	default:
		key, err := c.credentials.APIKey(ctx)
		if err != nil {
			return fmt.Errorf("getting API key: %w", err)
		}

		query.Set(constants.APIKeyParam, key)
	}

	return nil
}

// Get performs a GET request authenticated with the API key.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetSecret performs a GET request authenticated with the API secret.
func (c *Client) GetSecret(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query, Auth: AuthAPISecret})
}

// Post performs a POST request authenticated with the API key.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request authenticated with the API key.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request authenticated with the API secret,
// which the API requires for destructive operations.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Auth: AuthAPISecret})
}
