// Package database provides the data access layer for the library catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Driver selection, connection pool, migrations
//	├── materials/       # Material listing, detail, creation and withdrawal
//	├── catalog/         # Material type and genre enumeration
//	└── patrons/         # Patrons with their full checkout history
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	materialsRepo := materials.NewRepository(db.DB)
//	catalogRepo := catalog.NewRepository(db.DB)
//	patronsRepo := patrons.NewRepository(db.DB)
//
//	items, err := materialsRepo.ListCirculating(ctx, materials.Filter{})
//
// # Eager Loading
//
// Related rows are loaded with GORM's Preload, which issues one batched
// IN query per association level instead of one query per parent row.
//
// # Interface Implementations
//
//   - materials.Repository: implements http.MaterialStore
//   - catalog.Repository: implements http.CatalogStore
//   - patrons.Repository: implements http.PatronStore
//
// The checks live in internal/interfaces.
package database
