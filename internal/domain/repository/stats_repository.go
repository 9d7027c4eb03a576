package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

// CategorySalesResult ventas agregadas por categoría en un rango de fechas.
type CategorySalesResult struct {
	Category  entity.Category
	UnitsSold int64
	Revenue   decimal.Decimal // valor absoluto de las compras (las líneas son negativas)
}

// ProductSalesResult ventas agregadas por producto.
type ProductSalesResult struct {
	ProductID   int64
	ProductName string
	Category    entity.Category
	UnitsSold   int64
	Revenue     decimal.Decimal
}

// StatsRepository consultas de solo lectura sobre el ledger para la pantalla
// de administración.
type StatsRepository interface {
	SalesByCategory(ctx context.Context, startDate, endDate time.Time) ([]CategorySalesResult, error)
	TopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]ProductSalesResult, error)
}
