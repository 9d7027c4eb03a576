package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductFilters criterios del listado del catálogo (query params).
type ProductFilters struct {
	Query           string `query:"query"`
	Category        string `query:"category"`
	IncludeDisabled bool   `query:"include_disabled"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Category         string          `json:"category" validate:"required"`
	Price            decimal.Decimal `json:"price"`
	IsSpecialProduct bool            `json:"is_special_product"`
	IsAdminProduct   bool            `json:"is_admin_product"`
	IsOpenPrice      bool            `json:"is_open_price"`
	MeasureID        *int64          `json:"measure_id"`
}

// UpdateProductRequest entrada parcial para editar un producto (campos nil no se tocan).
type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Category         *string          `json:"category"`
	Price            *decimal.Decimal `json:"price"`
	Disabled         *bool            `json:"disabled"`
	IsSpecialProduct *bool            `json:"is_special_product"`
	IsOpenPrice      *bool            `json:"is_open_price"`
	MeasureID        *int64           `json:"measure_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	CategoryDisplay  string          `json:"category_display"`
	Price            decimal.Decimal `json:"price"`
	Disabled         bool            `json:"disabled"`
	IsSpecialProduct bool            `json:"is_special_product"`
	IsAdminProduct   bool            `json:"is_admin_product"`
	IsOpenPrice      bool            `json:"is_open_price"`
	MeasureID        *int64          `json:"measure_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
}
