// Package guard centralizes route access rules. Every protected route
// declares its guard at registration time, so the access policy lives in
// the route table instead of being re-checked inside individual handlers.
package guard

import (
	"net/http"
	"strconv"

	"github.com/devansh742005/under-the-hoodies/pkg/middleware"
)

// redirect issues a 303 See Other. Guards redirect rather than render an
// error page: an unauthorized visitor is sent somewhere useful, and the
// Location header makes the behavior observable in tests.
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// RequireUser allows only authenticated requests; anonymous visitors are
// redirected to the auth page.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.FromCtx(r.Context()); !ok {
			redirect(w, r, "/auth")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin allows only authenticated admins. Everyone else, signed-in
// or not, is bounced to the storefront home.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.FromCtx(r.Context())
		if !ok || !p.IsAdmin {
			redirect(w, r, "/")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOrderIntent ensures a checkout request carries a usable order
// intent: a positive integer product reference and a non-empty size.
// Requests without one are sent back to the shop to pick again.
func RequireOrderIntent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !validIntent(r.FormValue("product"), r.FormValue("size")) {
			redirect(w, r, "/shop")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func validIntent(product, size string) bool {
	if size == "" {
		return false
	}
	id, err := strconv.Atoi(product)
	return err == nil && id > 0
}
