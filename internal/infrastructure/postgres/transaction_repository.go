package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// TransactionRepository implementación PostgreSQL del ledger.
// Solo inserta y lee: las líneas son inmutables.
type TransactionRepository struct {
	db Querier
}

// NewTransactionRepository crea un repositorio del ledger.
func NewTransactionRepository(db Querier) repository.TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, product_id, amount, quantity, unit_price, batch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(context.Background(), query,
		t.UserID, t.ProductID, t.Amount, t.Quantity, t.UnitPrice, t.BatchID,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insertar transacción: %w", err)
	}
	return nil
}

func (r *TransactionRepository) ListByUser(userID int64, limit, offset int) ([]repository.TransactionRow, error) {
	query := `
		SELECT t.id, t.user_id, t.product_id, t.amount, t.quantity, t.unit_price,
		       t.batch_id, t.created_at, p.name, p.category
		FROM transactions t
		JOIN products p ON p.id = t.product_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	defer rows.Close()

	var result []repository.TransactionRow
	for rows.Next() {
		var row repository.TransactionRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.ProductID, &row.Amount, &row.Quantity,
			&row.UnitPrice, &row.BatchID, &row.CreatedAt,
			&row.ProductName, &row.ProductCategory,
		); err != nil {
			return nil, fmt.Errorf("escanear transacción: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// SumByUser recalcula el saldo autoritativo del socio desde el ledger.
func (r *TransactionRepository) SumByUser(userID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`, userID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sumar transacciones: %w", err)
	}
	return sum, nil
}
