package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loncotes/library/internal/config"
	"github.com/loncotes/library/internal/database"
	"github.com/loncotes/library/internal/database/catalog"
	"github.com/loncotes/library/internal/database/materials"
	"github.com/loncotes/library/internal/database/patrons"
	http_controllers "github.com/loncotes/library/internal/http"
	"github.com/loncotes/library/internal/metrics"
	"github.com/loncotes/library/internal/seed"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App is the wired service: the router and the database it serves.
type App struct {
	Router *gin.Engine
	DB     *database.Database
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT. SIGKILL can't be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// Build opens the database, optionally seeds it and wires the router.
// The caller owns the returned database and must close it.
func Build(cfg *config.Config, version string) (*App, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Seed.OnStart {
		data, err := seed.Default()
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to load seed fixture: %w", err)
		}
		if _, err := seed.Apply(context.Background(), db.DB, data); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	var metricsManager *metrics.Manager
	if cfg.Metrics.Enabled {
		metricsManager = metrics.NewManager(metrics.WithRuntimeCollectors())
		log.Printf("Prometheus metrics enabled at /metrics")
	}

	if len(cfg.CORS.AllowedOrigins) > 0 {
		log.Printf("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Docs.SwaggerEnabled {
		log.Printf("Swagger UI enabled at /swagger/index.html")
	}

	routerCfg := http_controllers.RouterConfig{
		MaterialStore:      materials.NewRepository(db.DB),
		CatalogStore:       catalog.NewRepository(db.DB),
		PatronStore:        patrons.NewRepository(db.DB),
		Database:           db,
		Version:            version,
		Metrics:            metricsManager,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		SwaggerEnabled:     cfg.Docs.SwaggerEnabled,
	}

	return &App{
		Router: http_controllers.NewRouter(routerCfg),
		DB:     db,
	}, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Loncotes Library v%s (%s)", version, cfg.Global.Environment)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := Build(cfg, version)
	if err != nil {
		log.Fatalf("%v", err)
	}

	onShutdown := func(ctx context.Context) {
		if err := app.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	Serve(app.Router, cfg, onShutdown)
}
