package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/http/handlers"
)

// NewRouter serves the stock service and the cart API.
func NewRouter(log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(AccessLog(log))
	r.Use(middleware.Recoverer)

	r.Get("/products", handlers.GetProductsHandler)
	r.Post("/products", handlers.CreateProductHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/stock/{id}", handlers.GetStockHandler)
	r.Post("/stock/{id}/adjust", handlers.AdjustStockHandler)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", handlers.GetCartHandler)
		r.Get("/summary", handlers.GetCartSummaryHandler)

		r.Group(func(r chi.Router) {
			r.Use(RateLimit)
			r.Post("/items", handlers.AddProductHandler)
			r.Put("/items/{id}", handlers.UpdateProductAmountHandler)
			r.Delete("/items/{id}", handlers.RemoveProductHandler)
			r.Post("/items/{id}/increment", handlers.IncrementProductHandler)
			r.Post("/items/{id}/decrement", handlers.DecrementProductHandler)
		})
	})

	r.Get("/notifications", handlers.GetNotificationsHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	return r
}
