package http

import (
	"github.com/loncotes/library/internal/metrics"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Stores
	MaterialStore MaterialStore
	CatalogStore  CatalogStore
	PatronStore   PatronStore

	// Health checks
	Database Pinger

	// Application info
	Version string

	// Metrics (optional). When set, requests are instrumented and /metrics is served.
	Metrics *metrics.Manager

	// Cross-origin access. Empty disables CORS handling.
	CORSAllowedOrigins []string

	// Serve Swagger UI under /swagger
	SwaggerEnabled bool
}
