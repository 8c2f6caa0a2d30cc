// Package seed loads the reference data the catalog API expects to exist:
// material types, genres and patrons, plus an optional starter set of
// materials and checkouts. Fixtures are YAML documents.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/loncotes/library/internal/entities"
)

//go:embed default.yaml
var defaultFixture []byte

// ErrUnknownReference is returned when a fixture row names a material type,
// genre, material or patron that the fixture does not define.
var ErrUnknownReference = errors.New("unknown fixture reference")

// ErrDuplicateEntry is returned when two fixture rows share the name or email
// that other rows use to reference them.
var ErrDuplicateEntry = errors.New("duplicate fixture entry")

type Data struct {
	MaterialTypes []MaterialType `yaml:"materialTypes"`
	Genres        []Genre        `yaml:"genres"`
	Patrons       []Patron       `yaml:"patrons"`
	Materials     []Material     `yaml:"materials"`
	Checkouts     []Checkout     `yaml:"checkouts"`
}

type MaterialType struct {
	Name         string `yaml:"name"`
	CheckoutDays int    `yaml:"checkoutDays"`
}

type Genre struct {
	Name string `yaml:"name"`
}

type Patron struct {
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Address   string `yaml:"address"`
	Email     string `yaml:"email"`
	IsActive  bool   `yaml:"isActive"`
}

// Material references its type and genre by name.
type Material struct {
	Name                  string     `yaml:"name"`
	Type                  string     `yaml:"type"`
	Genre                 string     `yaml:"genre"`
	OutOfCirculationSince *time.Time `yaml:"outOfCirculationSince"`
}

// Checkout references a material by name and a patron by email.
type Checkout struct {
	Material     string     `yaml:"material"`
	Patron       string     `yaml:"patron"`
	CheckoutDate time.Time  `yaml:"checkoutDate"`
	ReturnDate   *time.Time `yaml:"returnDate"`
}

// Result reports how many rows each table received.
type Result struct {
	Skipped       bool
	MaterialTypes int
	Genres        int
	Patrons       int
	Materials     int
	Checkouts     int
}

// Load parses a YAML fixture.
func Load(r io.Reader) (*Data, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return &data, nil
		}
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &data, nil
}

// LoadFile parses the YAML fixture at path.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed fixture: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// checkUnique rejects fixtures where a reference key names more than one row.
func (d *Data) checkUnique() error {
	keys := map[string][]string{}
	for _, mt := range d.MaterialTypes {
		keys["material type"] = append(keys["material type"], mt.Name)
	}
	for _, g := range d.Genres {
		keys["genre"] = append(keys["genre"], g.Name)
	}
	for _, p := range d.Patrons {
		keys["patron email"] = append(keys["patron email"], p.Email)
	}
	for _, m := range d.Materials {
		keys["material"] = append(keys["material"], m.Name)
	}

	for _, kind := range []string{"material type", "genre", "patron email", "material"} {
		seen := make(map[string]bool, len(keys[kind]))
		for _, key := range keys[kind] {
			if seen[key] {
				return fmt.Errorf("%w: %s %q appears more than once", ErrDuplicateEntry, kind, key)
			}
			seen[key] = true
		}
	}
	return nil
}

// Default returns the fixture bundled with the binary.
func Default() (*Data, error) {
	return Load(bytes.NewReader(defaultFixture))
}

// Apply inserts the fixture in a single transaction. It does nothing when the
// catalog already holds material types, so running it twice is safe.
func Apply(ctx context.Context, db *gorm.DB, data *Data) (Result, error) {
	if err := data.checkUnique(); err != nil {
		return Result{}, err
	}

	var result Result

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&entities.MaterialType{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			result.Skipped = true
			return nil
		}

		typeIDs := make(map[string]uint, len(data.MaterialTypes))
		for _, mt := range data.MaterialTypes {
			row := entities.MaterialType{Name: mt.Name, CheckoutDays: mt.CheckoutDays}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create material type %s: %w", mt.Name, err)
			}
			typeIDs[mt.Name] = row.ID
		}
		result.MaterialTypes = len(typeIDs)

		genreIDs := make(map[string]uint, len(data.Genres))
		for _, g := range data.Genres {
			row := entities.Genre{Name: g.Name}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create genre %s: %w", g.Name, err)
			}
			genreIDs[g.Name] = row.ID
		}
		result.Genres = len(genreIDs)

		patronIDs := make(map[string]uint, len(data.Patrons))
		for _, p := range data.Patrons {
			row := entities.Patron{
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Address:   p.Address,
				Email:     p.Email,
				IsActive:  p.IsActive,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create patron %s: %w", p.Email, err)
			}
			patronIDs[p.Email] = row.ID
		}
		result.Patrons = len(patronIDs)

		materialIDs := make(map[string]uint, len(data.Materials))
		for _, m := range data.Materials {
			typeID, ok := typeIDs[m.Type]
			if !ok {
				return fmt.Errorf("%w: material %q has type %q", ErrUnknownReference, m.Name, m.Type)
			}
			genreID, ok := genreIDs[m.Genre]
			if !ok {
				return fmt.Errorf("%w: material %q has genre %q", ErrUnknownReference, m.Name, m.Genre)
			}
			row := entities.Material{
				MaterialName:          m.Name,
				MaterialTypeID:        typeID,
				GenreID:               genreID,
				OutOfCirculationSince: m.OutOfCirculationSince,
			}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create material %s: %w", m.Name, err)
			}
			materialIDs[m.Name] = row.ID
		}
		result.Materials = len(materialIDs)

		for _, c := range data.Checkouts {
			materialID, ok := materialIDs[c.Material]
			if !ok {
				return fmt.Errorf("%w: checkout of unknown material %q", ErrUnknownReference, c.Material)
			}
			patronID, ok := patronIDs[c.Patron]
			if !ok {
				return fmt.Errorf("%w: checkout by unknown patron %q", ErrUnknownReference, c.Patron)
			}
			row := entities.Checkout{
				MaterialID:   materialID,
				PatronID:     patronID,
				CheckoutDate: c.CheckoutDate,
				ReturnDate:   c.ReturnDate,
			}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create checkout of %s: %w", c.Material, err)
			}
			result.Checkouts++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if result.Skipped {
		log.Printf("Catalog already seeded, skipping fixture")
	} else {
		log.Printf("Seeded %d material types, %d genres, %d patrons, %d materials, %d checkouts",
			result.MaterialTypes, result.Genres, result.Patrons, result.Materials, result.Checkouts)
	}
	return result, nil
}
