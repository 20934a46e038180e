// Package cli provides the interactive CPP Hub command-line client.
//
// It wires configuration, local credential storage, the API gateway, and the
// auth manager into an interactive REPL that drives the identity flows:
// registration with email verification, login, password reset, email change,
// and logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Per-flow transient state (the unverified email, the resend cooldown) lives
// in the App; session and credential state belongs to the auth manager. The
// resend cooldown is stopped when the REPL exits so no timer outlives the
// view.
package cli
