package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItem línea del carrito en el momento del pago. UnitPrice solo es
// obligatorio para productos de precio abierto; si viene para un producto
// normal, prevalece sobre el precio del catálogo (venta manual).
type CheckoutItem struct {
	ProductID int64            `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CheckoutRequest lote de líneas de un checkout.
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" validate:"required,min=1"`
}

// CheckoutResponse resultado de un checkout: las líneas insertadas y el saldo
// resultante del socio.
type CheckoutResponse struct {
	BatchID      string                `json:"batch_id"`
	Total        decimal.Decimal       `json:"total"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// AdjustmentRequest movimiento manual de saldo (solo admin). Amount con signo:
// positivo deposita, negativo corrige.
type AdjustmentRequest struct {
	UserID    int64           `json:"user_id" validate:"required"`
	ProductID int64           `json:"product_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// TransactionResponse línea del ledger para el historial del socio.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BatchID     *string         `json:"batch_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ReconcileResponse comparación entre el saldo materializado y la suma del ledger.
type ReconcileResponse struct {
	UserID     int64           `json:"user_id"`
	Balance    decimal.Decimal `json:"balance"`
	LedgerSum  decimal.Decimal `json:"ledger_sum"`
	Consistent bool            `json:"consistent"`
}
