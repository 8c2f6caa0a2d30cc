package http

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/loncotes/library/docs" // registers the OpenAPI document with swag
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(SecurityHeadersMiddleware())

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
	}

	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")

	// Materials
	if cfg.MaterialStore != nil {
		var events MaterialEvents
		if cfg.Metrics != nil {
			events = cfg.Metrics
		}
		materialsController := NewMaterialsController(cfg.MaterialStore, events)
		api.GET("/materials", materialsController.ListMaterials)
		api.GET("/materials/:id", materialsController.GetMaterial)
		api.POST("/materials", materialsController.CreateMaterial)
		api.PUT("/materials/:id", materialsController.WithdrawMaterial)
	}

	// Material types and genres
	if cfg.CatalogStore != nil {
		catalogController := NewCatalogController(cfg.CatalogStore)
		api.GET("/materialTypes", catalogController.ListMaterialTypes)
		api.GET("/genres", catalogController.ListGenres)
	}

	// Patrons
	if cfg.PatronStore != nil {
		patronsController := NewPatronsController(cfg.PatronStore)
		api.GET("/patrons", patronsController.ListPatrons)
	}

	return router
}

// corsConfig allows the listed origins. A "*" entry allows any origin, in
// which case credentials are not allowed.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Location", RequestIDHeader},
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
