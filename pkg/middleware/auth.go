package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/auth"
	"github.com/devansh742005/under-the-hoodies/pkg/logger"
)

// Principal is the authenticated identity attached to a request.
// IsAdmin reflects the role on record at request time, not at token
// issuance: it is resolved against the profile store on every request
// so a demoted admin loses access as soon as the row changes.
type Principal struct {
	UserID  uint
	Email   string
	IsAdmin bool
}

type principalKey struct{}

// FromCtx returns the Principal for the request, if any.
func FromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// WithPrincipal attaches a Principal to the context. Exposed for tests.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// Authenticate resolves the bearer token into a Principal when one is
// present. It never rejects the request itself: anonymous requests pass
// through without a Principal, and the guards downstream decide what to
// do about it. Role resolution fails closed — any error loading the
// profile leaves IsAdmin false.
func Authenticate(profiles store.Profiles) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" || token == r.Header.Get("Authorization") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			p := Principal{UserID: claims.UserID, Email: claims.Email}

			profile, err := profiles.Find(r.Context(), claims.UserID)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("role lookup failed",
					"user_id", claims.UserID,
					"error", err.Error(),
				)
			} else {
				p.Email = profile.Email
				p.IsAdmin = profile.IsAdmin()
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}
