package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/alexedwards/scs/v2"

	"ggrecap/internal/httputil"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const userIDKey contextKey = "user_id"

// SessionUserKey is the session key the login handler writes the user id to.
const SessionUserKey = "userID"

// LoadUser copies the session's user id, if any, into the request context.
// It never rejects; handlers that allow anonymous access read the context
// through UserIDFromContext and get ok=false.
func LoadUser(session *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := session.GetInt64(r.Context(), SessionUserKey); userID != 0 {
				ctx := context.WithValue(r.Context(), userIDKey, userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth redirects anonymous requests to the login page, remembering
// where they were headed.
func RequireAuth(session *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserIDFromContext(r.Context()); !ok {
				httputil.SetFlash(r.Context(), session, "warning", "Log in to join the discussion.")
				http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext extracts the authenticated user's id from the request
// context. Returns 0 and false for anonymous requests.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
