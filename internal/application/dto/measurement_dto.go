package dto

import "github.com/shopspring/decimal"

// CreateMeasurementRequest entrada para registrar una medida.
type CreateMeasurementRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit" validate:"required,min=1,max=20"`
}

// MeasurementResponse salida de una medida.
type MeasurementResponse struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}
