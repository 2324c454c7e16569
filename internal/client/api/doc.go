// Package api contains the client-side contract to the authentication
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Authenticate, Ping, Close.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that posts
//     credentials to /login and maps failures to errors the services layer
//     can reason about.
//
// # Error Handling
//
// A response carrying an error payload becomes a *AuthError whose Message is
// only populated when the payload is a displayable string (or an object with
// a string "message" field). Transport-level failures, where no response was
// received at all, are exposed as the sentinel ErrUnavailable; callers match
// it with errors.Is.
package api
