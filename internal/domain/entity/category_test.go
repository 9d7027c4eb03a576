package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range entity.Categories {
		assert.True(t, c.Valid(), "categoría del catálogo debe ser válida: %s", c)
	}
	assert.False(t, entity.Category("MILKSHAKE").Valid())
	assert.False(t, entity.Category("").Valid())
	assert.False(t, entity.Category("beer").Valid(), "las categorías son case-sensitive")
}

func TestCategory_DisplayName(t *testing.T) {
	casos := map[entity.Category]string{
		entity.CategoryBeer:         "Beer",
		entity.CategoryWhiskey:      "Whiskey",
		entity.CategoryLongDrink:    "Long Drink",
		entity.CategoryNonAlcoholic: "Non-Alcoholic",
		entity.CategoryEnergyDrink:  "Energy Drink",
		entity.CategoryOtherLiquor:  "Other Liquor",
	}
	for c, esperado := range casos {
		assert.Equal(t, esperado, c.DisplayName())
	}
}
