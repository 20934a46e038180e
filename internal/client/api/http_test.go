package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xJoaG/cpphub-cli/internal/logging"
)

// ---- helpers ----

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memStore is an in-memory token.Store for gateway tests.
type memStore struct {
	credential string
	loadErr    error
}

func (m *memStore) Save(ctx context.Context, credential string) error {
	m.credential = credential
	return nil
}

func (m *memStore) Load(ctx context.Context) (string, error) {
	return m.credential, m.loadErr
}

func (m *memStore) Clear(ctx context.Context) error {
	m.credential = ""
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, store *memStore) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	if store == nil {
		store = &memStore{}
	}
	return NewHTTPClient(srv.URL, 5*time.Second, store, nopLogger()), srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ---- TESTS ----

func TestLogin_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"token": "aaa.bbb.ccc",
			"user":  map[string]string{"id": "u1", "email": "a@x.com", "name": "A"},
		})
	}, nil)

	result, err := c.Login(context.Background(), "a@x.com", "pw123456")
	require.NoError(t, err)
	require.Equal(t, "/auth/login", gotPath)
	require.Empty(t, gotAuth, "login must not send a bearer credential")
	require.Equal(t, map[string]string{"email": "a@x.com", "password": "pw123456"}, gotBody)
	require.Equal(t, "aaa.bbb.ccc", result.Token)
	require.Equal(t, User{ID: "u1", Email: "a@x.com", Name: "A"}, result.User)
}

func TestLogin_BackendMessagePassedThrough(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	}, nil)

	_, err := c.Login(context.Background(), "a@x.com", "wrong")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusUnauthorized, reqErr.Status)
	require.Equal(t, "Invalid credentials", reqErr.Message)
	require.Equal(t, "Invalid credentials", err.Error())
}

func TestLogin_FallbackMessageWhenBodyHasNone(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	_, err := c.Login(context.Background(), "a@x.com", "pw")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "Login failed", reqErr.Message)
}

func TestLogin_TransportFailure(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, nil)
	srv.Close()

	_, err := c.Login(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, ErrTransport)
}

func TestRequestEmailChange_FailsFastWithoutCredential(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	}, &memStore{})

	_, err := c.RequestEmailChange(context.Background(), "new@x.com")
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Zero(t, hits, "no network call may be issued without a credential")
}

func TestRequestEmailChange_AttachesBearer(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Check your new email"})
	}, &memStore{credential: "aaa.bbb.ccc"})

	msg, err := c.RequestEmailChange(context.Background(), "new@x.com")
	require.NoError(t, err)
	require.Equal(t, "Bearer aaa.bbb.ccc", gotAuth)
	require.Equal(t, map[string]string{"newEmail": "new@x.com"}, gotBody)
	require.Equal(t, "Check your new email", msg)
}

func TestChangePassword_FailsFastWithoutCredential(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	}, &memStore{})

	_, err := c.ChangePassword(context.Background(), "old", "new")
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Zero(t, hits)
}

func TestChangePassword_BodyFields(t *testing.T) {
	var gotBody map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Password updated"})
	}, &memStore{credential: "aaa.bbb.ccc"})

	msg, err := c.ChangePassword(context.Background(), "oldpw", "newpw")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"currentPassword": "oldpw", "newPassword": "newpw"}, gotBody)
	require.Equal(t, "Password updated", msg)
}

func TestVerifyEmail_TokenInQuery(t *testing.T) {
	var gotMethod, gotToken string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotToken = r.URL.Query().Get("token")
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Email verified"})
	}, nil)

	msg, err := c.VerifyEmail(context.Background(), "tok/with special+chars")
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, gotMethod)
	require.Equal(t, "tok/with special+chars", gotToken)
	require.Equal(t, "Email verified", msg)
}

func TestVerifyNewEmail_UsesChangeEmailVerifyPath(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Email changed"})
	}, nil)

	_, err := c.VerifyNewEmail(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "/auth/change-email-verify", gotPath)
}

func TestResetPassword_BodyFields(t *testing.T) {
	var gotBody map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Password reset"})
	}, nil)

	_, err := c.ResetPassword(context.Background(), "tok", "newpw12345")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"token": "tok", "newPassword": "newpw12345"}, gotBody)
}

func TestStoreLoadFailure_SurfacesError(t *testing.T) {
	boom := errors.New("disk gone")
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, &memStore{loadErr: boom})

	_, err := c.ChangePassword(context.Background(), "a", "b")
	require.ErrorIs(t, err, boom)
}
