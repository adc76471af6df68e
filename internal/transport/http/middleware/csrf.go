package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"ggrecap/internal/httputil"
)

// CSRF issues a per-session token and requires every form POST to echo it in
// the csrf_token field. The renderer injects the same token into each page.
func CSRF(session *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.GetString(r.Context(), httputil.SessionKeyCSRF)
			if token == "" {
				token = uuid.NewString()
				session.Put(r.Context(), httputil.SessionKeyCSRF, token)
			}

			if r.Method == http.MethodPost {
				if r.PostFormValue("csrf_token") != token {
					http.Error(w, "Invalid or missing CSRF token", http.StatusForbidden)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
