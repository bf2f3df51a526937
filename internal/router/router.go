package router

import (
	"net/http"
	"strings"

	"catalog-api/internal/handler"
	"catalog-api/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Collection routes: POST creates, GET lists
		if r.URL.Path == "/products" || r.URL.Path == "/products/" {
			if r.Method == http.MethodPost {
				productHandler.Create(w, r)
				return
			}
			productHandler.List(w, r)
			return
		}

		// Item route: GET /products/{id}
		productHandler.GetByID(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/products", productRouteHandler)
	mux.HandleFunc("/products/", productRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Route based on method and path
		if r.Method == http.MethodPost && (r.URL.Path == "/orders" || r.URL.Path == "/orders/") {
			orderHandler.Create(w, r)
			return
		}

		// Listing route: GET /orders/{userId}
		if strings.HasPrefix(r.URL.Path, "/orders/") && r.URL.Path != "/orders/" {
			orderHandler.ListByUser(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/orders", orderRouteHandler)
	mux.HandleFunc("/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
