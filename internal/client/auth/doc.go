// Package auth is the flow controller of the client: it owns the in-memory
// session, drives the identity flows (login, registration, logout, password
// reset, email change) against the api gateway, and performs post-operation
// navigation through a Navigator.
//
// # State & invariants
//
//   - At most one session exists at a time; it is created by a successful
//     login or by restoring a stored credential at startup, and destroyed on
//     logout, on credential expiry, or after an email change.
//   - The token store is mutated only after a backend call has fully
//     succeeded; a failed operation leaves store and session untouched and
//     re-raises the underlying error unmodified.
//   - Operations are not serialized. Each sets an advisory busy flag for its
//     duration, and a monotonic sequence counter drops responses that were
//     superseded by a newer operation.
//
// The session is an optimistic UI affordance, never a security boundary:
// privileged operations are authorized by the backend on every request.
package auth
