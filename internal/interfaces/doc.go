// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - MaterialStore: Material listing, detail, creation and withdrawal (internal/http/materials.go)
//   - CatalogStore: Material types and genres (internal/http/catalog.go)
//   - PatronStore: Patrons with checkout history (internal/http/patrons.go)
//   - Pinger: Database reachability for /health (internal/http/health.go)
//
// ## Observability Interfaces
//
//   - MaterialEvents: Counts successful material writes (internal/http/materials.go)
//
// # Adding a New Endpoint Group
//
// To expose a new part of the catalog (e.g., checkouts by material type):
//
//  1. Create a repository sub-package under internal/database/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//     func (r *Repository) ListOutstanding(ctx context.Context) ([]entities.Checkout, error)
//
//  2. Declare the store interface next to its controller in internal/http/
//     and add it to RouterConfig.
//
//  3. Register routes in router.go and wire the repository in entrypoint.go.
//
//  4. Add a compile-time check in checks.go:
//
//     var _ http.CheckoutStore = (*checkouts.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
