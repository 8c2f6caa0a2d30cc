package entities

import (
	"time"
)

type MaterialType struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	CheckoutDays int        `gorm:"not null" json:"checkoutDays"`
	Materials    []Material `gorm:"foreignKey:MaterialTypeID" json:"-"`
}

type Genre struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Materials []Material `gorm:"foreignKey:GenreID" json:"-"`
}

// Material is a catalog item. It is withdrawn from circulation by setting
// OutOfCirculationSince; rows are never hard-deleted.
type Material struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	MaterialName   string       `gorm:"size:512;not null" json:"materialName"`
	MaterialTypeID uint         `gorm:"index;not null" json:"materialTypeId"`
	MaterialType   MaterialType `gorm:"foreignKey:MaterialTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"materialType"`
	GenreID        uint         `gorm:"index;not null" json:"genreId"`
	Genre          Genre        `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"genre"`

	OutOfCirculationSince *time.Time `gorm:"index" json:"outOfCirculationSince"`

	Checkouts []Checkout `gorm:"foreignKey:MaterialID" json:"checkouts,omitempty"`
}

// IsCirculating reports whether the material is still available for checkout.
func (m Material) IsCirculating() bool {
	return m.OutOfCirculationSince == nil
}
