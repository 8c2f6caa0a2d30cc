// Package materials provides database operations for catalog materials.
//
// This package implements the MaterialStore interface defined in
// internal/http/materials.go.
//
// # Interface Implementation
//
//	var _ http.MaterialStore = (*Repository)(nil)
//
// # Usage
//
//	repo := materials.NewRepository(db)
//	items, err := repo.ListCirculating(ctx, materials.Filter{GenreID: &genreID})
package materials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/loncotes/library/internal/entities"
)

var (
	// ErrNotFound is returned when no material matches the requested ID.
	ErrNotFound = errors.New("material not found")

	// ErrInvalidReference is returned when a new material points at a
	// material type or genre that does not exist.
	ErrInvalidReference = errors.New("invalid material reference")
)

// Filter narrows the circulating material listing. Nil fields match everything.
type Filter struct {
	MaterialTypeID *uint
	GenreID        *uint
}

// Repository handles all material database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new materials repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCirculating returns materials that are not withdrawn, with their type and genre.
func (r *Repository) ListCirculating(ctx context.Context, filter Filter) ([]entities.Material, error) {
	query := r.db.WithContext(ctx).
		Preload("MaterialType").
		Preload("Genre").
		Where("out_of_circulation_since IS NULL")

	if filter.MaterialTypeID != nil {
		query = query.Where("material_type_id = ?", *filter.MaterialTypeID)
	}
	if filter.GenreID != nil {
		query = query.Where("genre_id = ?", *filter.GenreID)
	}

	var materials []entities.Material
	err := query.Order("id ASC").Find(&materials).Error
	return materials, err
}

// GetDetail retrieves a material with its type, genre and full checkout
// history, each checkout carrying its patron. Withdrawn materials are included.
func (r *Repository) GetDetail(ctx context.Context, id uint) (*entities.Material, error) {
	var material entities.Material
	err := r.db.WithContext(ctx).
		Preload("MaterialType").
		Preload("Genre").
		Preload("Checkouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("checkout_date ASC, id ASC")
		}).
		Preload("Checkouts.Patron").
		First(&material, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// Create inserts a new circulating material after checking that its type and
// genre exist, then reloads it with both associations.
func (r *Repository) Create(ctx context.Context, material *entities.Material) (*entities.Material, error) {
	db := r.db.WithContext(ctx)

	if err := ensureExists(db, &entities.MaterialType{}, material.MaterialTypeID, "material type"); err != nil {
		return nil, err
	}
	if err := ensureExists(db, &entities.Genre{}, material.GenreID, "genre"); err != nil {
		return nil, err
	}

	row := entities.Material{
		MaterialName:   material.MaterialName,
		MaterialTypeID: material.MaterialTypeID,
		GenreID:        material.GenreID,
	}
	if err := db.Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}

	var created entities.Material
	err := db.Preload("MaterialType").Preload("Genre").First(&created, row.ID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to reload material %d: %w", row.ID, err)
	}
	return &created, nil
}

// Withdraw marks a material out of circulation as of the given time. Calling it
// on an already withdrawn material overwrites the timestamp.
func (r *Repository) Withdraw(ctx context.Context, id uint, at time.Time) error {
	db := r.db.WithContext(ctx)

	var material entities.Material
	err := db.Select("id").First(&material, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return db.Model(&entities.Material{}).
		Where("id = ?", id).
		Update("out_of_circulation_since", at).Error
}

func ensureExists(db *gorm.DB, model any, id uint, what string) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s %d does not exist", ErrInvalidReference, what, id)
	}
	return nil
}
