package http

import (
	"time"

	"github.com/loncotes/library/internal/entities"
)

// Transfer shapes. Nested shapes are pointers or slices so each endpoint can
// choose how deep its projection goes; unset ones serialize as null.

type MaterialTypeDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CheckoutDays int    `json:"checkoutDays"`
}

type GenreDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type MaterialDTO struct {
	ID                    uint             `json:"id"`
	MaterialName          string           `json:"materialName"`
	MaterialTypeID        uint             `json:"materialTypeId"`
	MaterialType          *MaterialTypeDTO `json:"materialType"`
	GenreID               uint             `json:"genreId"`
	Genre                 *GenreDTO        `json:"genre"`
	OutOfCirculationSince *time.Time       `json:"outOfCirculationSince"`
	Checkouts             []CheckoutDTO    `json:"checkouts"`
}

type PatronDTO struct {
	ID        uint          `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Address   string        `json:"address"`
	Email     string        `json:"email"`
	IsActive  bool          `json:"isActive"`
	Checkouts []CheckoutDTO `json:"checkouts"`
}

type CheckoutDTO struct {
	ID           uint         `json:"id"`
	MaterialID   uint         `json:"materialId"`
	Material     *MaterialDTO `json:"material"`
	PatronID     uint         `json:"patronId"`
	Patron       *PatronDTO   `json:"patron"`
	CheckoutDate time.Time    `json:"checkoutDate"`
	ReturnDate   *time.Time   `json:"returnDate"`
}

// CreateMaterialRequest is the POST /api/materials body.
type CreateMaterialRequest struct {
	MaterialName   string `json:"materialName" binding:"required"`
	MaterialTypeID uint   `json:"materialTypeId" binding:"required"`
	GenreID        uint   `json:"genreId" binding:"required"`
}

func toMaterialTypeDTO(mt entities.MaterialType) MaterialTypeDTO {
	return MaterialTypeDTO{ID: mt.ID, Name: mt.Name, CheckoutDays: mt.CheckoutDays}
}

func toGenreDTO(g entities.Genre) GenreDTO {
	return GenreDTO{ID: g.ID, Name: g.Name}
}

// toMaterialSummary projects a material with its type and genre but no checkouts.
func toMaterialSummary(m entities.Material) MaterialDTO {
	materialType := toMaterialTypeDTO(m.MaterialType)
	genre := toGenreDTO(m.Genre)
	return MaterialDTO{
		ID:                    m.ID,
		MaterialName:          m.MaterialName,
		MaterialTypeID:        m.MaterialTypeID,
		MaterialType:          &materialType,
		GenreID:               m.GenreID,
		Genre:                 &genre,
		OutOfCirculationSince: m.OutOfCirculationSince,
	}
}

// toMaterialDetail adds the checkout history, each checkout with its patron.
// The checkouts field is an empty array, not null, when there is no history.
func toMaterialDetail(m entities.Material) MaterialDTO {
	dto := toMaterialSummary(m)
	dto.Checkouts = make([]CheckoutDTO, 0, len(m.Checkouts))
	for _, co := range m.Checkouts {
		patron := toPatronSummary(co.Patron)
		dto.Checkouts = append(dto.Checkouts, CheckoutDTO{
			ID:           co.ID,
			MaterialID:   co.MaterialID,
			PatronID:     co.PatronID,
			Patron:       &patron,
			CheckoutDate: co.CheckoutDate,
			ReturnDate:   co.ReturnDate,
		})
	}
	return dto
}

func toPatronSummary(p entities.Patron) PatronDTO {
	return PatronDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Email:     p.Email,
		IsActive:  p.IsActive,
	}
}

// toPatronWithCheckouts inlines every checkout's material, and that
// material's type and genre.
func toPatronWithCheckouts(p entities.Patron) PatronDTO {
	dto := toPatronSummary(p)
	dto.Checkouts = make([]CheckoutDTO, 0, len(p.Checkouts))
	for _, co := range p.Checkouts {
		material := toMaterialSummary(co.Material)
		dto.Checkouts = append(dto.Checkouts, CheckoutDTO{
			ID:           co.ID,
			MaterialID:   co.MaterialID,
			Material:     &material,
			PatronID:     co.PatronID,
			CheckoutDate: co.CheckoutDate,
			ReturnDate:   co.ReturnDate,
		})
	}
	return dto
}
