// Package server assembles the HTTP API for `passgen serve`.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
)

// NewRouter builds the API routes. The /api/v1 group is rate limited and,
// when a JWT secret is configured, requires a bearer token.
func NewRouter(cfg config.Config, logger *slog.Logger, svc *service.GeneratorService) http.Handler {
	genHandler := handler.NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))

	r.Get("/health", handler.HandleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.BearerAuth(cfg.JWTSecret))
		}

		r.Get("/categories", genHandler.HandleCategories)
		r.Post("/generate", genHandler.HandleGenerate)
	})

	return r
}
