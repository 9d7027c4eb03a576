package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category categoría fija de producto en el catálogo de la barra.
type Category string

const (
	CategoryBeer         Category = "BEER"
	CategoryLongDrink    Category = "LONG_DRINK"
	CategoryCider        Category = "CIDER"
	CategoryLiquor       Category = "LIQUOR"
	CategoryOtherLiquor  Category = "OTHER_LIQUOR"
	CategoryGin          Category = "GIN"
	CategoryVodka        Category = "VODKA"
	CategoryWhiskey      Category = "WHISKEY"
	CategoryRum          Category = "RUM"
	CategoryTequila      Category = "TEQUILA"
	CategoryGrappa       Category = "GRAPPA"
	CategoryWine         Category = "WINE"
	CategoryCocktail     Category = "COCKTAIL"
	CategorySoda         Category = "SODA"
	CategoryEnergyDrink  Category = "ENERGY_DRINK"
	CategoryNonAlcoholic Category = "NON_ALCOHOLIC"
	CategoryFood         Category = "FOOD"
	CategoryOther        Category = "OTHER"
)

// Categories todas las categorías válidas, en el orden de presentación del catálogo.
var Categories = []Category{
	CategoryBeer, CategoryLongDrink, CategoryCider, CategoryLiquor,
	CategoryOtherLiquor, CategoryGin, CategoryVodka, CategoryWhiskey,
	CategoryRum, CategoryTequila, CategoryGrappa, CategoryWine,
	CategoryCocktail, CategorySoda, CategoryEnergyDrink,
	CategoryNonAlcoholic, CategoryFood, CategoryOther,
}

// Valid indica si c es una de las categorías conocidas.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var displayNames = map[Category]string{
	CategoryNonAlcoholic: "Non-Alcoholic",
	CategoryEnergyDrink:  "Energy Drink",
	CategoryLongDrink:    "Long Drink",
	CategoryOtherLiquor:  "Other Liquor",
}

var titleCaser = cases.Title(language.English)

// DisplayName devuelve el nombre legible de la categoría para listados y exportes.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(string(c)), "_", " "))
}
