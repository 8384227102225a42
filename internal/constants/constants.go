// Package constants defines shared constants used across the client.
package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the production ConvertKit v3 API endpoint.
	DefaultBaseURL = "https://api.convertkit.com/v3"

	// DefaultUserAgent identifies the client on the wire.
	DefaultUserAgent = "convertkit-go/1.0"
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the transport timeout when the caller sets
	// no context deadline.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry configuration. Retries are off unless the caller opts in.
const (
	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// HTTP status handling.
const (
	// HTTPStatusErrorThreshold is the lowest status code treated as an
	// API error.
	HTTPStatusErrorThreshold = 400
)

// Query parameter names for credentials.
const (
	// APIKeyParam carries the account API key.
	APIKeyParam = "api_key"

	// APISecretParam carries the account API secret.
	APISecretParam = "api_secret"
)
