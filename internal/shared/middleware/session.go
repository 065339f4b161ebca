package middleware

import (
	"context"
	"net/http"

	"github.com/Dhayanand17/AQI/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const sessionKey contextKey = "session"

// GetSession extracts the decoded session from the request context. Handlers
// behind NewSessionMiddleware always get a non-nil session.
func GetSession(ctx context.Context) *session.Session {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	if !ok {
		return session.New()
	}
	return s
}

// NewSessionMiddleware decodes the encrypted session cookie once per request
// and adds the resulting session to the request context. Requests without a
// valid cookie proceed with a fresh anonymous session; the screen router
// decides what an anonymous visitor may see.
func NewSessionMiddleware(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := manager.FromRequest(r)
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
