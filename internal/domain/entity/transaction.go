package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction es una línea inmutable del ledger: negativa para compras,
// positiva para depósitos y créditos administrativos. La suma de las líneas de
// un socio define su saldo. BatchID agrupa las N líneas de un mismo checkout.
type Transaction struct {
	ID        int64
	UserID    int64
	ProductID int64
	Amount    decimal.Decimal
	Quantity  int
	UnitPrice decimal.Decimal
	BatchID   *string // uuid del checkout; nil para ajustes individuales
	CreatedAt time.Time
}
