package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

// TransactionRow línea del ledger con el producto resuelto para el historial.
type TransactionRow struct {
	entity.Transaction
	ProductName     string
	ProductCategory entity.Category
}

// TransactionRepository define el puerto de persistencia para el ledger.
// Las transacciones son inmutables: no existe Update ni Delete.
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	ListByUser(userID int64, limit, offset int) ([]TransactionRow, error)
	// SumByUser recalcula el saldo autoritativo desde el ledger (reconciliación).
	SumByUser(userID int64) (decimal.Decimal, error)
}
