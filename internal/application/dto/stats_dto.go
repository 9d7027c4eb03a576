package dto

import "github.com/shopspring/decimal"

// CategorySalesResponse ventas agregadas por categoría.
type CategorySalesResponse struct {
	Category        string          `json:"category"`
	CategoryDisplay string          `json:"category_display"`
	UnitsSold       int64           `json:"units_sold"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// ProductSalesResponse ventas agregadas por producto.
type ProductSalesResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	UnitsSold   int64           `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// StatsResponse datos para la pantalla de administración.
type StatsResponse struct {
	ByCategory  []CategorySalesResponse `json:"by_category"`
	TopProducts []ProductSalesResponse  `json:"top_products"`
}
