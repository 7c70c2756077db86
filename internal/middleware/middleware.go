package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Dan9191/auth-service/internal/auth"
	"github.com/gorilla/mux"
)

type contextKey string

// SubjectKey is the request-context key holding the verified token subject.
const SubjectKey contextKey = "subject"

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// AuthMiddleware guards protected routes. It extracts the session token from
// the request cookie and verifies it; no store lookup happens here, so a user
// removed from the store keeps access until the token expires.
func AuthMiddleware(tokens *auth.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				denyAccess(w, "token cookie missing")
				return
			}

			subject, err := tokens.Verify(cookie.Value)
			if err != nil {
				denyAccess(w, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the verified token subject stored by AuthMiddleware.
func Subject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}

func denyAccess(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   reason,
		"message": "re-login",
	})
}
