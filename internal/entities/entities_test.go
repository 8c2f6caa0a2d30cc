package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaterial_IsCirculating(t *testing.T) {
	withdrawnAt := time.Date(2023, 7, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, Material{MaterialName: "Dune"}.IsCirculating())
	assert.False(t, Material{MaterialName: "Dune", OutOfCirculationSince: &withdrawnAt}.IsCirculating())
}

func TestCheckout_IsOut(t *testing.T) {
	returned := time.Date(2023, 7, 14, 0, 0, 0, 0, time.UTC)

	assert.True(t, Checkout{CheckoutDate: returned.AddDate(0, 0, -7)}.IsOut())
	assert.False(t, Checkout{CheckoutDate: returned.AddDate(0, 0, -7), ReturnDate: &returned}.IsOut())
}
