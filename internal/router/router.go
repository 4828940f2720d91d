package router

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// The checkout endpoint is deliberately outside the JWT group: it is the
// guest-checkout surface and takes its identity from the request body.
func New(
	checkoutHandler *handler.CheckoutHandler,
	productHandler *handler.ProductHandler,
	adminHandler *handler.AdminHandler,
	jwtSecret string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/checkout", checkoutHandler.Create)

	protected := middleware.JWTAuth(jwtSecret, logger)

	// Catalogue routes, scoped to the token's store
	mux.Handle("/api/products", protected(http.HandlerFunc(productHandler.List)))
	mux.Handle("/api/products/categories", protected(http.HandlerFunc(productHandler.Categories)))
	mux.Handle("/api/products/category-counts", protected(http.HandlerFunc(productHandler.CategoryCounts)))
	mux.Handle("/api/products/add", protected(http.HandlerFunc(productHandler.Add)))
	mux.Handle("/api/products/filter", protected(http.HandlerFunc(productHandler.Filter)))

	// Order lookup
	mux.Handle("/api/orders/", protected(http.HandlerFunc(checkoutHandler.GetByID)))

	// Admin dashboard routes
	mux.Handle("/api/admin/summary", protected(http.HandlerFunc(adminHandler.Summary)))
	mux.Handle("/api/admin/stores", protected(http.HandlerFunc(adminHandler.Stores)))
	mux.Handle("/api/admin/stores/", protected(http.HandlerFunc(adminHandler.UpdateStoreStatus)))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
