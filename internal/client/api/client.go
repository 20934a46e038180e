package api

import "context"

// User is the identity payload returned by the login endpoint.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// LoginResult is the success payload of Login: the issued bearer credential
// plus the authenticated user.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Client is the typed contract to the backend auth API. Implementations
// normalize failures: a non-2xx response comes back as *RequestError, a
// network failure wraps ErrTransport, and operations marked "auth required"
// return ErrUnauthenticated without network I/O when no credential is stored.
//
// All operations accept context.Context and must honor cancellation/timeouts.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, email, password, name string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)

	// RequestEmailChange requires a stored credential.
	RequestEmailChange(ctx context.Context, newEmail string) (string, error)
	VerifyNewEmail(ctx context.Context, token string) (string, error)

	VerifyEmail(ctx context.Context, token string) (string, error)
	ResendVerification(ctx context.Context, email string) (string, error)

	// ChangePassword requires a stored credential.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error)
}
