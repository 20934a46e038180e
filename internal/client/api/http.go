package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xJoaG/cpphub-cli/internal/client/token"
	"github.com/xJoaG/cpphub-cli/internal/logging"
)

// maxErrorBody caps how much of an error response is read while looking for
// the backend message.
const maxErrorBody = 64 << 10

// HTTPClient is the concrete Client over the backend's JSON/HTTP contract.
// The bearer credential is re-read from the token store on every
// authenticated call; nothing is cached across requests.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens token.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// call describes one round-trip to the backend.
type call struct {
	op          string // operation name, for logging
	method      string
	path        string // includes query when present
	body        any    // nil for bodyless requests
	fallbackMsg string // used when an error body carries no message
	requireAuth bool
}

// do executes the call and decodes a 2xx body into out (when out is non-nil).
// Failures are normalized: missing credential on an authenticated call ->
// ErrUnauthenticated before any I/O, network errors -> ErrTransport wrap,
// non-2xx -> *RequestError with the backend message.
func (c *HTTPClient) do(ctx context.Context, cl call, out any) error {
	var bearer string
	if cl.requireAuth {
		credential, err := c.tokens.Load(ctx)
		if err != nil {
			return fmt.Errorf("load credential: %w", err)
		}
		if credential == "" {
			return ErrUnauthenticated
		}
		bearer = credential
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "op", cl.op, "request_id", requestID, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var mr messageResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(data, &mr)
		msg := mr.Message
		if msg == "" {
			msg = cl.fallbackMsg
		}
		c.log.Warn(ctx, "request rejected", "op", cl.op, "request_id", requestID, "status", resp.StatusCode)
		return &RequestError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	c.log.Debug(ctx, "request finished", "op", cl.op, "request_id", requestID, "status", resp.StatusCode)
	return nil
}

// message runs a call whose success payload is just {message}.
func (c *HTTPClient) message(ctx context.Context, cl call) (string, error) {
	var mr messageResponse
	if err := c.do(ctx, cl, &mr); err != nil {
		return "", err
	}
	return mr.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/auth/login",
		body: map[string]string{
			"email":    email,
			"password": password,
		},
		fallbackMsg: "Login failed",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (string, error) {
	return c.message(ctx, call{
		op:     "register",
		method: http.MethodPost,
		path:   "/auth/register",
		body: map[string]string{
			"email":    email,
			"password": password,
			"name":     name,
		},
		fallbackMsg: "Registration failed",
	})
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	return c.message(ctx, call{
		op:          "forgot_password",
		method:      http.MethodPost,
		path:        "/auth/forgot-password",
		body:        map[string]string{"email": email},
		fallbackMsg: "Forgot password request failed",
	})
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	return c.message(ctx, call{
		op:     "reset_password",
		method: http.MethodPost,
		path:   "/auth/reset-password",
		body: map[string]string{
			"token":       token,
			"newPassword": newPassword,
		},
		fallbackMsg: "Password reset failed",
	})
}

func (c *HTTPClient) RequestEmailChange(ctx context.Context, newEmail string) (string, error) {
	return c.message(ctx, call{
		op:          "request_email_change",
		method:      http.MethodPost,
		path:        "/auth/change-email-request",
		body:        map[string]string{"newEmail": newEmail},
		fallbackMsg: "Email change request failed",
		requireAuth: true,
	})
}

func (c *HTTPClient) VerifyNewEmail(ctx context.Context, token string) (string, error) {
	return c.message(ctx, call{
		op:          "verify_new_email",
		method:      http.MethodGet,
		path:        "/auth/change-email-verify?token=" + url.QueryEscape(token),
		fallbackMsg: "New email verification failed",
	})
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) (string, error) {
	return c.message(ctx, call{
		op:          "verify_email",
		method:      http.MethodGet,
		path:        "/auth/verify-email?token=" + url.QueryEscape(token),
		fallbackMsg: "Email verification failed",
	})
}

func (c *HTTPClient) ResendVerification(ctx context.Context, email string) (string, error) {
	return c.message(ctx, call{
		op:          "resend_verification",
		method:      http.MethodPost,
		path:        "/auth/resend-verification",
		body:        map[string]string{"email": email},
		fallbackMsg: "Failed to resend email",
	})
}

func (c *HTTPClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	return c.message(ctx, call{
		op:     "change_password",
		method: http.MethodPost,
		path:   "/auth/change-password",
		body: map[string]string{
			"currentPassword": currentPassword,
			"newPassword":     newPassword,
		},
		fallbackMsg: "Failed to update password",
		requireAuth: true,
	})
}
