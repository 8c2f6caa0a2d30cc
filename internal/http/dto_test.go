package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loncotes/library/internal/entities"
)

func sampleMaterial() entities.Material {
	return entities.Material{
		ID:             3,
		MaterialName:   "Dune",
		MaterialTypeID: 1,
		MaterialType:   entities.MaterialType{ID: 1, Name: "Book", CheckoutDays: 14},
		GenreID:        2,
		Genre:          entities.Genre{ID: 2, Name: "Science Fiction"},
	}
}

func TestToMaterialSummary_JSONShape(t *testing.T) {
	out, err := json.Marshal(toMaterialSummary(sampleMaterial()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 3,
		"materialName": "Dune",
		"materialTypeId": 1,
		"materialType": {"id": 1, "name": "Book", "checkoutDays": 14},
		"genreId": 2,
		"genre": {"id": 2, "name": "Science Fiction"},
		"outOfCirculationSince": null,
		"checkouts": null
	}`, string(out))
}

func TestToMaterialDetail(t *testing.T) {
	returned := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	m := sampleMaterial()
	m.Checkouts = []entities.Checkout{{
		ID:           9,
		MaterialID:   3,
		PatronID:     4,
		Patron:       entities.Patron{ID: 4, FirstName: "Ada", Email: "ada@example.com", IsActive: true},
		CheckoutDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:   &returned,
	}}

	dto := toMaterialDetail(m)

	require.Len(t, dto.Checkouts, 1)
	co := dto.Checkouts[0]
	assert.Equal(t, uint(9), co.ID)
	assert.Nil(t, co.Material)
	require.NotNil(t, co.Patron)
	assert.Equal(t, "ada@example.com", co.Patron.Email)
	assert.Nil(t, co.Patron.Checkouts)
	assert.Equal(t, &returned, co.ReturnDate)
}

func TestToMaterialDetail_NoHistory(t *testing.T) {
	out, err := json.Marshal(toMaterialDetail(sampleMaterial()))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.JSONEq(t, "[]", string(raw["checkouts"]))
}

func TestToPatronWithCheckouts(t *testing.T) {
	p := entities.Patron{
		ID:        4,
		FirstName: "Ada",
		LastName:  "Lovelace",
		IsActive:  false,
		Checkouts: []entities.Checkout{{ID: 9, MaterialID: 3, PatronID: 4, Material: sampleMaterial()}},
	}

	dto := toPatronWithCheckouts(p)

	assert.False(t, dto.IsActive)
	require.Len(t, dto.Checkouts, 1)
	co := dto.Checkouts[0]
	assert.Nil(t, co.Patron)
	assert.Nil(t, co.ReturnDate)
	require.NotNil(t, co.Material)
	require.NotNil(t, co.Material.Genre)
	assert.Equal(t, "Science Fiction", co.Material.Genre.Name)
	assert.Nil(t, co.Material.Checkouts)
}
