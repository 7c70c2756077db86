package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/auth-service/internal/auth"
	"github.com/stretchr/testify/require"
)

func guardedEndpoint(t *testing.T, tokens *auth.TokenManager) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := Subject(r.Context())
		require.True(t, ok, "subject must be in context behind the guard")
		_, _ = w.Write([]byte(subject))
	})
	return AuthMiddleware(tokens)(next)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("secret", time.Minute)
	token, err := tokens.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()

	guardedEndpoint(t, tokens).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", rec.Body.String())
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("secret", time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	guardedEndpoint(t, tokens).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "re-login", body["message"])
	require.NotEmpty(t, body["error"])
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := auth.NewTokenManager("secret", -time.Second)
	token, err := expired.Issue("alice")
	require.NoError(t, err)

	tokens := auth.NewTokenManager("secret", time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()

	guardedEndpoint(t, tokens).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "re-login", body["message"])
}

func TestAuthMiddleware_ForgedToken(t *testing.T) {
	t.Parallel()

	forged, err := auth.NewTokenManager("attacker-secret", time.Minute).Issue("alice")
	require.NoError(t, err)

	tokens := auth.NewTokenManager("secret", time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	rec := httptest.NewRecorder()

	guardedEndpoint(t, tokens).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
