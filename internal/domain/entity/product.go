package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la barra.
// Los productos deshabilitados se conservan para el historial de transacciones
// (nunca se borran una vez referenciados); IsAdminProduct marca entradas que
// solo existen para ajustes manuales de saldo (depósito, corrección);
// IsOpenPrice marca productos cuyo precio lo indica el vendedor en el momento
// de la venta.
type Product struct {
	ID               int64
	Name             string
	Category         Category
	Price            decimal.Decimal
	Disabled         bool
	IsSpecialProduct bool  // destacado / acceso rápido en la pantalla de compra
	IsAdminProduct   bool
	IsOpenPrice      bool
	MeasureID        *int64 // medida opcional (ej. 33 cl)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
