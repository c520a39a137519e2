// Package api contains the EasyApt API client.
//
// # Overview
//
// The package provides:
//  1. A single request gateway (see Gateway.Do) every authenticated call
//     flows through. It merges caller headers with the defaults, attaches
//     the bearer credential, classifies responses by their transport status
//     and declared content type, and detects the server's inactivity-based
//     session-expiry signal.
//  2. A typed API contract (see the Client interface) for the backend
//     endpoints: auth, profile, providers and appointments.
//  3. The concrete HTTP implementation (see HTTPClient) whose typed methods
//     are thin wrappers over the gateway.
//
// # Error Handling
//
// Transport failures propagate to the caller unmodified. Non-2xx responses
// surface as *APIError whose message follows a fixed fallback chain:
// the structured "detail" field, then the raw payload, then a synthesized
// "HTTP error, status <code>" string. A 401 carrying the inactivity marker
// is not an APIError: the gateway clears the credential store, notifies the
// configured SessionHandler, and returns ErrSessionExpired, which callers
// match with errors.Is.
//
// No call is ever retried at this layer.
//
// # Concurrency
//
// A Gateway is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
//
// # See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient, Gateway
//   - Errors:     ErrSessionExpired, ErrUnavailable, APIError
package api
