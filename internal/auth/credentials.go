// Package auth provides credential handling for the ConvertKit API.
// The API authenticates with the account API key on most endpoints and
// requires the API secret on a handful of others; both ride as query
// parameters rather than headers.
package auth

import (
	"context"

	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// Credential failures surface the public sentinels so callers can match
// with errors.Is regardless of which layer raised them.
var (
	ErrAPIKeyRequired    = convertkit.ErrAPIKeyRequired
	ErrAPISecretRequired = convertkit.ErrAPISecretRequired
)

// Credentials supplies the key material injected into each request.
type Credentials interface {
	// APIKey returns the account API key.
	APIKey(ctx context.Context) (string, error)
	// APISecret returns the account API secret, or
	// ErrAPISecretRequired when none is configured.
	APISecret(ctx context.Context) (string, error)
}

// StaticCredentials holds a fixed key and optional secret. It is
// immutable and safe for concurrent use.
type StaticCredentials struct {
	key    string
	secret string
}

// NewStaticCredentials creates credentials from a key and optional
// secret.
func NewStaticCredentials(key, secret string) *StaticCredentials {
	return &StaticCredentials{key: key, secret: secret}
}

// APIKey implements Credentials.APIKey.
func (c *StaticCredentials) APIKey(ctx context.Context) (string, error) {
	if c.key == "" {
		return "", ErrAPIKeyRequired
	}

	return c.key, nil
}

// APISecret implements Credentials.APISecret.
func (c *StaticCredentials) APISecret(ctx context.Context) (string, error) {
	if c.secret == "" {
		return "", ErrAPISecretRequired
	}

	return c.secret, nil
}
