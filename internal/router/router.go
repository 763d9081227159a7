package router

import (
	"net/http"
	"strings"

	"ezysalad/internal/handler"
	"ezysalad/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	contactHandler *handler.ContactHandler,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public menu routes
	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/menus" && r.URL.Path != "/api/menus/" {
			menuHandler.GetByID(w, r)
			return
		}
		menuHandler.GetCategories(w, r)
	}
	mux.HandleFunc("/api/menus", menuRouteHandler)
	mux.HandleFunc("/api/menus/", menuRouteHandler)

	// Order routes: POST creates, GET looks up by order number + phone
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			orderHandler.Create(w, r)
		case http.MethodGet:
			orderHandler.Lookup(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Payment routes
	mux.HandleFunc("/api/payments/checkout", paymentHandler.Checkout)
	mux.HandleFunc("/api/payments/complete", paymentHandler.Complete)

	// Contact form
	mux.HandleFunc("/api/contact", contactHandler.Submit)

	// Admin menu routes (API key enforced by middleware)
	adminMenuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/admin/menus" || r.URL.Path == "/api/admin/menus/"

		switch {
		case isCollection && r.Method == http.MethodGet:
			menuHandler.AdminList(w, r)
		case isCollection && r.Method == http.MethodPost:
			menuHandler.AdminCreate(w, r)
		case !isCollection && r.Method == http.MethodPut:
			menuHandler.AdminUpdate(w, r)
		case !isCollection && r.Method == http.MethodDelete:
			menuHandler.AdminDelete(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/admin/menus", adminMenuRouteHandler)
	mux.HandleFunc("/api/admin/menus/", adminMenuRouteHandler)

	// Admin order status updates
	mux.HandleFunc("/api/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || !strings.HasPrefix(r.URL.Path, "/api/admin/orders/") {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		orderHandler.AdminUpdateStatus(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminAuth
	var h http.Handler = mux
	h = middleware.AdminAuth(adminAPIKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
