// Package ckclient constructs concrete ConvertKit API clients.
//
// It wires the transport, credentials, and resource clients behind the
// interfaces defined in the convertkit package:
//
//	cli, err := ckclient.NewWithKeyAndSecret(apiKey, apiSecret)
//	if err != nil { ... }
//	tags, err := cli.Tags().List(ctx)
//
// Use New with a convertkit.Config for full control over base URL,
// timeouts, logging, and retry behavior.
package ckclient
