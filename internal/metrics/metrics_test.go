package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/materials/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/api/materials/1", "/api/materials/2", "/nowhere"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/materials/:id", "GET", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestManager_CatalogCounters(t *testing.T) {
	m := NewManager()

	m.RecordMaterialCreated()
	m.RecordMaterialWithdrawn()
	m.RecordMaterialWithdrawn()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.materialsCreated))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.materialsWithdrawn))
}

func TestManager_NilIsNoop(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.RecordMaterialCreated()
		m.RecordMaterialWithdrawn()
		m.RecordHTTPRequest("/x", "GET", 200, time.Millisecond)
	})
}

func TestManager_Handler(t *testing.T) {
	m := NewManager(WithNamespace("catalog_test"), WithHistogramBuckets([]float64{0.1, 1}))
	m.RecordHTTPRequest("/api/genres", "GET", 200, 50*time.Millisecond)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `catalog_test_http_requests_total{method="GET",route="/api/genres",status="200"} 1`)
	assert.Contains(t, body, "catalog_test_http_request_duration_seconds_bucket")
}

func TestManager_RuntimeCollectors(t *testing.T) {
	m := NewManager(WithRuntimeCollectors())

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
