// Package routes declares the full route table. Guards are attached here,
// per route, so the access policy for the whole storefront is readable in
// one place.
package routes

import (
	"time"

	"github.com/devansh742005/under-the-hoodies/app/controllers"
	"github.com/devansh742005/under-the-hoodies/app/services"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/guard"
	"github.com/devansh742005/under-the-hoodies/pkg/metrics"
	"github.com/devansh742005/under-the-hoodies/pkg/middleware"
	"github.com/devansh742005/under-the-hoodies/pkg/reqid"
	"github.com/devansh742005/under-the-hoodies/pkg/router"
)

// Register wires middleware, controllers, and guards onto the router.
func Register(r *router.Router, s store.Store) {
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
		middleware.Authenticate(s.Profiles()),
	)

	authController := controllers.NewAuthController(services.NewAuthService(s))
	catalogController := controllers.NewCatalogController(services.NewCatalogService(s))
	checkoutController := controllers.NewCheckoutController(services.NewCheckoutService(s))
	adminController := controllers.NewAdminController(services.NewAdminService(s))

	// Public storefront.
	r.Get("/", "home", catalogController.Home)
	r.Get("/shop", "shop.index", catalogController.List)
	r.Get("/shop/{id}", "shop.show", catalogController.Detail)
	r.Post("/shop/{id}/order", "shop.order", catalogController.OrderNow, guard.RequireUser)

	// Auth.
	r.Get("/auth", "auth.prompt", authController.Prompt)
	r.Post("/auth/register", "auth.register", authController.Register)
	r.Post("/auth/login", "auth.login", authController.Login)
	r.Post("/auth/logout", "auth.logout", authController.Logout)

	// Checkout and order history: signed-in users only, and checkout
	// additionally needs a well-formed order intent.
	r.Get("/checkout", "checkout.show", checkoutController.Show,
		guard.RequireUser, guard.RequireOrderIntent)
	r.Post("/checkout", "checkout.place", checkoutController.Place,
		guard.RequireUser, guard.RequireOrderIntent)
	r.Get("/dashboard", "dashboard", checkoutController.Dashboard, guard.RequireUser)

	// Admin: the guard runs before any handler touches the store.
	admin := r.Group("/admin", guard.RequireAdmin)
	admin.Get("", "admin.home", adminController.Landing)
	admin.Get("/products", "admin.products.index", adminController.Products)
	admin.Post("/products", "admin.products.create", adminController.CreateProduct)
	admin.Put("/products/{id}", "admin.products.update", adminController.UpdateProduct)
	admin.Delete("/products/{id}", "admin.products.delete", adminController.DeleteProduct)
	admin.Get("/orders", "admin.orders.index", adminController.Orders)

	// Operational.
	r.Get("/metrics", "metrics", metrics.Handler())
}
