// Package token owns durable storage of the bearer credential.
//
// The credential lives in a single slot in the client sqlite database and
// survives process restarts. Storage is the single source of truth for
// credential presence; other components read it per request and never cache
// it. Slot writes are atomic per call, so access needs no extra locking.
//
//   - Interface:   Store
//   - sqlite impl: SQLiteStore
//   - DB helpers:  InitDatabase, RunMigrations
package token
