// Package api serves a symbol stream over a REST API.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkarlsen/cvsym/pkg/cvsym"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(table *cvsym.SymbolTable, names NameIndex, config ServerConfig) error {
	// Initialize metrics
	metrics := NewMetrics()
	metrics.UpdateStreamSize(table.Len())

	server := NewServer(table, names, config, metrics)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Symbol stream
		r.Get("/symbols", metrics.InstrumentHandler("GET", "/api/v1/symbols", server.handleListSymbols))
		r.Get("/symbols/{index}", metrics.InstrumentHandler("GET", "/api/v1/symbols/{index}", server.handleGetSymbol))
		r.Get("/scopes", metrics.InstrumentHandler("GET", "/api/v1/scopes", server.handleScopes))

		// Name index
		r.Get("/lookup", metrics.InstrumentHandler("GET", "/api/v1/lookup", server.handleLookup))
	})

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting cvsym REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	return http.ListenAndServe(addr, r)
}
