package token

import "context"

// Store is the single durable slot holding the bearer credential.
//
// Contract:
//   - Save overwrites any prior value; the write survives process restarts.
//   - Load returns the stored credential, or "" when no credential is present.
//     Absence is not an error.
//   - Clear removes the credential unconditionally and is idempotent.
//
// The store is the single source of truth for "is a credential present";
// callers must not cache its value beyond a single request.
type Store interface {
	Save(ctx context.Context, credential string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
