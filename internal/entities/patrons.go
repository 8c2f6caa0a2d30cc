package entities

import (
	"time"
)

type Patron struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	FirstName string     `gorm:"size:100;not null" json:"firstName"`
	LastName  string     `gorm:"size:100;not null" json:"lastName"`
	Address   string     `gorm:"size:512" json:"address"`
	Email     string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	IsActive  bool       `gorm:"not null" json:"isActive"`
	Checkouts []Checkout `gorm:"foreignKey:PatronID" json:"checkouts,omitempty"`
}

// Checkout is a loan of one material to one patron. A nil ReturnDate means
// the material is still out.
type Checkout struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	MaterialID   uint       `gorm:"index;not null" json:"materialId"`
	Material     Material   `gorm:"foreignKey:MaterialID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"material"`
	PatronID     uint       `gorm:"index;not null" json:"patronId"`
	Patron       Patron     `gorm:"foreignKey:PatronID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"patron"`
	CheckoutDate time.Time  `gorm:"not null" json:"checkoutDate"`
	ReturnDate   *time.Time `json:"returnDate"`
}

func (c Checkout) IsOut() bool {
	return c.ReturnDate == nil
}
