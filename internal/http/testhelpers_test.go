package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/loncotes/library/internal/config"
	"github.com/loncotes/library/internal/database"
	"github.com/loncotes/library/internal/database/catalog"
	"github.com/loncotes/library/internal/database/materials"
	"github.com/loncotes/library/internal/database/patrons"
	"github.com/loncotes/library/internal/seed"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Row IDs assigned by the bundled fixture, in file order.
const (
	seedBookTypeID       = 1
	seedCDTypeID         = 3
	seedSciFiGenreID     = 1
	seedJazzGenreID      = 5
	seedDuneID           = 1
	seedLeftHandID       = 2
	seedKindOfBlueID     = 7
	seedTimeOutID        = 8
	seedCirculatingCount = 7
)

// setupSeededDB opens a fresh SQLite database loaded with the default fixture.
func setupSeededDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "library.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	data, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.Apply(context.Background(), db.DB, data)
	require.NoError(t, err)
	return db
}

// setupLibraryRouter wires every API route against a seeded database.
func setupLibraryRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupSeededDB(t)
	router := NewRouter(RouterConfig{
		MaterialStore: materials.NewRepository(db.DB),
		CatalogStore:  catalog.NewRepository(db.DB),
		PatronStore:   patrons.NewRepository(db.DB),
		Database:      db,
		Version:       "test",
	})
	return router, db.DB
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
