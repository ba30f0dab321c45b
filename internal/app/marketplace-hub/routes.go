// Package marketplacehub предоставляет маршруты для основного приложения.
package marketplacehub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/catalog/categories"
	cataloglist "github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/catalog/list"
	dashboardproducts "github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/dashboard/products"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/dashboard/stats"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/health"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/product/contactlink"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/product/create"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/product/remove"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/product/update"
	productupload "github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/product/upload"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/handlers/profile/sellermode"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/marketplace-hub/internal/services/auth"
	productservice "github.com/magabrotheeeer/marketplace-hub/internal/services/product"
	uploadservice "github.com/magabrotheeeer/marketplace-hub/internal/services/upload"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tokenParser middlewarectx.TokenParser,
	authService *authservice.AuthService, productService *productservice.Service,
	uploadService *uploadservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(tokenParser, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/profile/seller-mode", sellermode.New(logger, authService).ServeHTTP)
			r.Get("/catalog", cataloglist.New(logger, productService).ServeHTTP)
			r.Get("/categories", categories.New(logger, productService).ServeHTTP)
			r.Get("/products/{id}", read.New(logger, productService).ServeHTTP)
			r.Get("/products/{id}/contact-link", contactlink.New(logger, productService).ServeHTTP)

			// Операции кабинета продавца
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.SellerOnlyMiddleware(logger))

				r.Post("/products", create.New(logger, productService).ServeHTTP)
				r.Put("/products/{id}", update.New(logger, productService).ServeHTTP)
				r.Delete("/products/{id}", remove.New(logger, productService).ServeHTTP)
				r.Post("/products/images", productupload.New(logger, uploadService).ServeHTTP)
				r.Get("/dashboard/stats", stats.New(logger, productService).ServeHTTP)
				r.Get("/dashboard/products", dashboardproducts.New(logger, productService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
