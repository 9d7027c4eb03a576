package entity

import "github.com/shopspring/decimal"

// Measurement medida de un producto (ej. 33 cl). No puede eliminarse mientras
// algún producto la referencie.
type Measurement struct {
	ID     int64
	Amount decimal.Decimal
	Unit   string
}
