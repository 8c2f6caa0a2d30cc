// Package catalog provides read access to the reference tables that classify
// materials: material types and genres. Both are seeded externally.
package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/loncotes/library/internal/entities"
)

// Repository handles material type and genre queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListMaterialTypes returns every material type.
func (r *Repository) ListMaterialTypes(ctx context.Context) ([]entities.MaterialType, error) {
	var types []entities.MaterialType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

// ListGenres returns every genre.
func (r *Repository) ListGenres(ctx context.Context) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error
	return genres, err
}
