// Package controllers maps HTTP requests onto services and renders the
// JSON envelope. Each page payload carries the role-aware navigation shell
// alongside its data.
package controllers

import (
	"net/http"

	"github.com/devansh742005/under-the-hoodies/pkg/middleware"
)

// NavLink is one entry in the navigation shell.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// navShell builds the link set for the requesting visitor: Home and Shop
// always; Dashboard and Sign out when signed in, Sign in otherwise; Admin
// only for admins.
func navShell(r *http.Request) []NavLink {
	links := []NavLink{
		{Label: "Home", Path: "/"},
		{Label: "Shop", Path: "/shop"},
	}

	p, signedIn := middleware.FromCtx(r.Context())
	if !signedIn {
		return append(links, NavLink{Label: "Sign in", Path: "/auth"})
	}

	links = append(links, NavLink{Label: "Dashboard", Path: "/dashboard"})
	if p.IsAdmin {
		links = append(links, NavLink{Label: "Admin", Path: "/admin"})
	}
	return append(links, NavLink{Label: "Sign out", Path: "/auth/logout"})
}

// page wraps handler data with the navigation shell.
func page(r *http.Request, data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"nav":  navShell(r),
		"data": data,
	}
}
