package api_middleware

import (
	"context"
	"net/http"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/google/uuid"
)

type contextKey string

const visitorContextKey contextKey = "visitor"

// VisitorMiddleware makes sure every request carries a visitor id. Unknown
// or malformed cookies are replaced by a fresh id.
func VisitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := ""
		if cookie, err := r.Cookie(commons.VisitorCookieName); err == nil {
			if id, err := uuid.Parse(cookie.Value); err == nil {
				visitorID = id.String()
			}
		}
		if visitorID == "" {
			visitorID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     commons.VisitorCookieName,
				Value:    visitorID,
				Path:     "/",
				MaxAge:   int(commons.VisitorCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), visitorContextKey, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VisitorID returns the id set by VisitorMiddleware, or "" outside it.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorContextKey).(string)
	return id
}

// WithVisitorID is used by handlers invoked without the middleware.
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorContextKey, visitorID)
}
