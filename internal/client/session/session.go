// Package session holds the client-side identity snapshot and the optimistic
// credential decode that produces it.
//
// Decode never contacts the backend and never verifies the credential's
// signature: it only reads the claims for immediate UI state. It must not be
// treated as proof of validity for privileged actions; the backend stays the
// authority on every request.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedCredential means the credential is not a structurally valid
	// three-part token with a JSON claims segment.
	ErrMalformedCredential = errors.New("malformed credential")

	// ErrExpired means the credential's exp claim is in the past (or absent).
	ErrExpired = errors.New("credential expired")
)

// DefaultDisplayName substitutes for a missing name claim.
const DefaultDisplayName = "User"

// Session is the non-authoritative snapshot of the signed-in user. At most
// one exists at a time; its presence means "optimistically authenticated".
type Session struct {
	ID    string
	Email string
	Name  string
}

type credentialClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// Decode extracts a Session from credential without verifying its signature.
// It fails with ErrMalformedCredential on structural problems and ErrExpired
// when exp is at or before now. On either failure the caller is expected to
// clear the stored credential; decode failures are self-healing and must not
// be shown to the user.
func Decode(credential string, now time.Time) (*Session, error) {
	claims := &credentialClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(now) {
		return nil, ErrExpired
	}

	name := claims.Name
	if name == "" {
		name = DefaultDisplayName
	}

	return &Session{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  name,
	}, nil
}
