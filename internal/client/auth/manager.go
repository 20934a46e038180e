package auth

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xJoaG/cpphub-cli/internal/client/api"
	"github.com/xJoaG/cpphub-cli/internal/client/session"
	"github.com/xJoaG/cpphub-cli/internal/client/token"
	"github.com/xJoaG/cpphub-cli/internal/logging"
)

// Manager orchestrates the identity flows and owns the in-memory session.
// It is the only component allowed to mutate the token store or the session,
// and it does so only after a backend call has fully succeeded: an operation
// either completes its side effects or leaves no trace.
//
// Construct it once per process with New (which restores a stored session)
// and inject it into consumers; it is not ambient global state.
type Manager struct {
	api    api.Client
	tokens token.Store
	nav    Navigator
	log    logging.Logger

	mu      sync.Mutex
	session *session.Session

	// busy is advisory, for UI disabling only; it is not a lock and does not
	// serialize operations.
	busy atomic.Bool

	// seq orders session-mutating operations. A response applies its writes
	// only while it is still the newest operation; a superseded response is
	// dropped.
	seq atomic.Uint64
}

// New builds a Manager and runs the startup sequence once: load the stored
// credential, decode it optimistically, and either restore the session or
// silently clear the slot on malformed/expired credentials. Decode failures
// are self-healing and are never returned to the caller.
func New(ctx context.Context, apiClient api.Client, tokens token.Store, nav Navigator, log logging.Logger) (*Manager, error) {
	m := &Manager{
		api:    apiClient,
		tokens: tokens,
		nav:    nav,
		log:    log,
	}

	credential, err := tokens.Load(ctx)
	if err != nil {
		return nil, err
	}
	if credential == "" {
		return m, nil
	}

	s, err := session.Decode(credential, time.Now())
	if err != nil {
		m.log.Info(ctx, "clearing stored credential", "reason", err)
		if cerr := tokens.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear stored credential", "error", cerr)
		}
		return m, nil
	}

	m.session = s
	return m, nil
}

// Session returns a copy of the current identity snapshot, or nil when the
// user is not authenticated.
func (m *Manager) Session() *session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	s := *m.session
	return &s
}

// IsAuthenticated reports whether a session is present. This is an
// optimistic, client-side signal only.
func (m *Manager) IsAuthenticated() bool {
	return m.Session() != nil
}

// Busy reports whether any operation is currently in flight. Advisory only.
func (m *Manager) Busy() bool {
	return m.busy.Load()
}

func (m *Manager) beginOp() func() {
	m.busy.Store(true)
	return func() { m.busy.Store(false) }
}

func (m *Manager) setSession(s *session.Session) {
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
}

// Login authenticates against the backend. On success it persists the
// credential, installs the session, and navigates to the dashboard. On
// failure nothing is mutated and the error propagates unmodified.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	defer m.beginOp()()
	seq := m.seq.Add(1)

	result, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	if m.seq.Load() != seq {
		m.log.Info(ctx, "dropping superseded login response")
		return nil
	}

	if err := m.tokens.Save(ctx, result.Token); err != nil {
		return err
	}

	name := result.User.Name
	if name == "" {
		name = session.DefaultDisplayName
	}
	m.setSession(&session.Session{ID: result.User.ID, Email: result.User.Email, Name: name})

	m.log.Info(ctx, "login succeeded", "email", result.User.Email)
	m.nav.Navigate(RouteDashboard)
	return nil
}

// Register creates an account. The backend sends a verification email; the
// user is not logged in. On success the caller is directed to the
// verification view and gets the backend message for display.
func (m *Manager) Register(ctx context.Context, email, password, name string) (string, error) {
	defer m.beginOp()()

	msg, err := m.api.Register(ctx, email, password, name)
	if err != nil {
		m.log.Warn(ctx, "registration failed", "error", err)
		return "", err
	}

	m.log.Info(ctx, "registration succeeded", "email", email)
	m.nav.Navigate(RouteVerifyEmail)
	return msg, nil
}

// Logout clears the credential and the session and navigates home. It never
// fails and is idempotent: with no session it still clears the (empty) slot.
func (m *Manager) Logout(ctx context.Context) {
	defer m.beginOp()()
	m.seq.Add(1)

	if err := m.tokens.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear credential on logout", "error", err)
	}
	m.setSession(nil)
	m.nav.Navigate(RouteHome)
}

// ForgotPassword asks the backend to send a reset link. No session change;
// the backend message is returned for the caller to display.
func (m *Manager) ForgotPassword(ctx context.Context, email string) (string, error) {
	defer m.beginOp()()
	return m.api.ForgotPassword(ctx, email)
}

// ResetPassword completes the reset flow with the one-time token from the
// emailed link. An empty token is rejected locally with ErrMissingResetToken
// before any network call. No session change; the user must log in again.
func (m *Manager) ResetPassword(ctx context.Context, resetToken, newPassword string) (string, error) {
	defer m.beginOp()()

	if resetToken == "" {
		return "", ErrMissingResetToken
	}
	return m.api.ResetPassword(ctx, resetToken, newPassword)
}

// RequestEmailChange asks the backend to start the email-change flow for the
// signed-in user. The session's email stays unchanged until the new address
// is verified. Requires a stored credential (enforced by the gateway).
func (m *Manager) RequestEmailChange(ctx context.Context, newEmail string) (string, error) {
	defer m.beginOp()()
	return m.api.RequestEmailChange(ctx, newEmail)
}

// VerifyNewEmail completes the email-change flow. On success the stored
// credential still carries the old address, so the manager forces
// re-authentication: credential and session are cleared and the caller is
// directed to the login view.
func (m *Manager) VerifyNewEmail(ctx context.Context, verifyToken string) (string, error) {
	defer m.beginOp()()
	seq := m.seq.Add(1)

	msg, err := m.api.VerifyNewEmail(ctx, verifyToken)
	if err != nil {
		return "", err
	}

	if m.seq.Load() != seq {
		m.log.Info(ctx, "dropping superseded email verification response")
		return msg, nil
	}

	if cerr := m.tokens.Clear(ctx); cerr != nil {
		m.log.Error(ctx, "failed to clear credential after email change", "error", cerr)
	}
	m.setSession(nil)

	m.log.Info(ctx, "email changed, re-authentication required")
	m.nav.Navigate(RouteLogin)
	return msg, nil
}
