// Package patrons provides database operations for library patrons.
//
// # Usage
//
//	repo := patrons.NewRepository(db)
//	all, err := repo.ListWithCheckouts(ctx)
package patrons

import (
	"context"

	"gorm.io/gorm"

	"github.com/loncotes/library/internal/entities"
)

// Repository handles all patron database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new patrons repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListWithCheckouts returns every patron, active or not, with the complete
// checkout history. Each checkout carries its material and the material's
// type and genre. Returned and outstanding checkouts are both included.
func (r *Repository) ListWithCheckouts(ctx context.Context) ([]entities.Patron, error) {
	var patrons []entities.Patron
	err := r.db.WithContext(ctx).
		Preload("Checkouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("checkout_date ASC, id ASC")
		}).
		Preload("Checkouts.Material").
		Preload("Checkouts.Material.MaterialType").
		Preload("Checkouts.Material.Genre").
		Order("id ASC").
		Find(&patrons).Error
	return patrons, err
}
