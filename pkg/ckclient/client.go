// Package ckclient provides the main entry point for creating ConvertKit API clients
package ckclient

import (
	"fmt"
	"strings"

	"github.com/kitforge-io/convertkit/internal/client"
	"github.com/kitforge-io/convertkit/pkg/convertkit"
)

// New creates a new ConvertKit API client.
func New(config *convertkit.Config) (convertkit.Client, error) {
	if config == nil {
		return nil, convertkit.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, convertkit.ErrAPIKeyRequired
	}

	if config.BaseURL != "" {
		config.BaseURL = NormalizeEndpoint(config.BaseURL)
	}

	ckClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return ckClient, nil
}

// NormalizeEndpoint trims a trailing slash and adds "https://" when no
// scheme is present.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithAPIKey creates a new client with just an API key. Secret-only
// endpoints will fail with convertkit.ErrAPISecretRequired.
func NewWithAPIKey(apiKey string) (convertkit.Client, error) {
	return New(&convertkit.Config{
		APIKey: apiKey,
	})
}

// NewWithKeyAndSecret creates a new client with an API key and secret.
func NewWithKeyAndSecret(apiKey, apiSecret string) (convertkit.Client, error) {
	return New(&convertkit.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
}
