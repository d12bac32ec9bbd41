package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the caller's cache scope.
const SessionCookie = "sales_atlas_session"

type sessionCtxKey struct{}

// SessionIssuer mints identifiers for new caller sessions.
type SessionIssuer interface {
	NewSession() string
}

// Session resolves the caller's session identifier from the request cookie,
// issuing a fresh one when the cookie is absent or not a valid id, and
// stores it in the request context for SessionID.
func Session(issuer SessionIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			var id string
			if cookie, err := req.Cookie(SessionCookie); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					id = cookie.Value
				}
			}
			if id == "" {
				id = issuer.NewSession()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(req.Context(), sessionCtxKey{}, id)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// SessionID returns the identifier stored by the Session middleware, or an
// empty string outside of it.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}
