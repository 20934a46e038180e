// Package api contains the typed gateway to the backend auth service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     nine auth endpoints: login, register, forgot/reset password, email
//     change request + verification, email verification, resend
//     verification, and change password.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     stored bearer credential to authenticated calls and normalizes
//     failures into a single error shape.
//
// # Error Handling
//
// Callers can match conditions with errors.Is / errors.As:
//
//   - ErrUnauthenticated: an authenticated operation found no stored
//     credential; no network call was made.
//   - ErrTransport: network-level failure (DNS, refused, timeout).
//   - *RequestError: the backend answered non-2xx; Message carries the
//     backend-supplied text unmodified.
//
// The gateway performs no retries and no backoff: at most one round-trip per
// call.
package api
