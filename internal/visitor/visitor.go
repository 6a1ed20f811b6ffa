// Package visitor issues and reads the anonymous visitor id that namespaces
// per-browser preferences.
package visitor

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultCookieName is the cookie used when none is configured.
const DefaultCookieName = "serviqo_visitor"

// CookieMaxAge is how long a visitor id survives without a visit.
const CookieMaxAge = 365 * 24 * time.Hour

type contextKey struct{}

// Middleware ensures every request carries a visitor id. Requests without a
// valid id cookie get a new UUID, set on the response.
func Middleware(cookieName string) func(http.Handler) http.Handler {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(CookieMaxAge / time.Second),
					HttpOnly: true,
					Secure:   r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

// WithID returns a context carrying the visitor id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the visitor id, or "" outside the middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
