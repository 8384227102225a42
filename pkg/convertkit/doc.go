// Package convertkit provides types, interfaces, and helpers for working
// with the ConvertKit V3 API.
//
// # Overview
//
// The convertkit package defines the domain types (Form, Sequence, Tag,
// Subscriber, Subscription, Account) and the interfaces for
// resource-oriented clients (FormsClient, SequencesClient, TagsClient,
// SubscribersClient). A concrete implementation of these clients is
// provided by the ckclient package, which wires configuration, transport,
// and credential handling. Most consumers should import ckclient to
// construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/kitforge-io/convertkit/pkg/ckclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ckclient.NewWithAPIKey("my-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  forms, err := cli.Forms().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = forms
//	}
//
// # Credentials
//
// The API key rides as the api_key query parameter on every request.
// Endpoints the API documents as secret-only (account, subscriber
// listing, subscription listing) send the api_secret instead; calling
// them without a configured secret fails fast with ErrAPISecretRequired.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common
// cases. Transport failures are returned wrapped, unmodified in kind.
//
// # Interceptors
//
// The package includes request/response interceptors for logging and
// custom headers. Set Config.Interceptors to run a chain around every
// request the client sends.
package convertkit
