// Package apiclient provides a configurable HTTP API client with built-in
// authentication schemes, content-type-driven body encoding, and
// content-type-driven response decoding.
//
// The client is stateless per call: configuration is fixed at construction
// and every request builds a fresh transport-ready descriptor, so a single
// client is safe for concurrent use.
//
// # Basic Usage
//
//	client, err := apiclient.New(apiclient.Config{
//	    BaseURL: "https://api.example.com/v2",
//	    Auth:    apiclient.BearerAuth(token),
//	})
//
//	resp, err := client.Do(ctx, apiclient.Request{
//	    Endpoint: "/users/42",
//	    Query:    apiclient.Query{{Key: "active", Value: "true"}},
//	})
//
// # Typed Responses
//
//	user, err := apiclient.Get[User](client, ctx, "/users/42")
package apiclient
