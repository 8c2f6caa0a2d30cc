package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/loncotes/library/internal/database"
	"github.com/loncotes/library/internal/database/catalog"
	"github.com/loncotes/library/internal/database/materials"
	"github.com/loncotes/library/internal/database/patrons"
	"github.com/loncotes/library/internal/http"
	"github.com/loncotes/library/internal/metrics"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.MaterialStore = (*materials.Repository)(nil)
var _ http.CatalogStore = (*catalog.Repository)(nil)
var _ http.PatronStore = (*patrons.Repository)(nil)

// Health checks
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Observability
// =============================================================================

var _ http.MaterialEvents = (*metrics.Manager)(nil)
