package http

import (
	"context"
	"net/http"

	"github.com/stridewear/storefront/internal/cart/repository"
)

type contextKey string

// SessionIDKey is the request-context key carrying the shopper session id.
const SessionIDKey contextKey = "session_id"

// SessionHeader is the header clients echo back to keep their session.
const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the shopper session from the request
// header, creating a fresh one when the header is missing or names an
// expired session. The session id is always echoed in the response so
// the client can pick up a newly issued one.
func SessionMiddleware(sessions repository.SessionRepository) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)

			known := false
			if id != "" {
				known = sessions.View(id, func(*repository.Session) {}) == nil
			}
			if !known {
				id = sessions.Create().ID
			}

			w.Header().Set(SessionHeader, id)
			ctx := context.WithValue(r.Context(), SessionIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// SessionFromContext extracts the session id placed by SessionMiddleware.
func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
