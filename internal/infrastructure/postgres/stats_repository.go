package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// StatsRepository consultas agregadas de solo lectura sobre el ledger.
// Solo cuenta compras (amount < 0) de productos normales: los ajustes
// administrativos no son ventas.
type StatsRepository struct {
	db Querier
}

// NewStatsRepository crea un repositorio de estadísticas.
func NewStatsRepository(db Querier) repository.StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) SalesByCategory(ctx context.Context, startDate, endDate time.Time) ([]repository.CategorySalesResult, error) {
	query := `
		SELECT p.category, COALESCE(SUM(t.quantity), 0), COALESCE(SUM(-t.amount), 0)
		FROM transactions t
		JOIN products p ON p.id = t.product_id
		WHERE t.amount < 0
		  AND NOT p.is_admin_product
		  AND t.created_at >= $1 AND t.created_at <= $2
		GROUP BY p.category
		ORDER BY SUM(-t.amount) DESC`

	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("ventas por categoría: %w", err)
	}
	defer rows.Close()

	var results []repository.CategorySalesResult
	for rows.Next() {
		var res repository.CategorySalesResult
		if err := rows.Scan(&res.Category, &res.UnitsSold, &res.Revenue); err != nil {
			return nil, fmt.Errorf("escanear ventas por categoría: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func (r *StatsRepository) TopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT p.id, p.name, p.category, COALESCE(SUM(t.quantity), 0), COALESCE(SUM(-t.amount), 0)
		FROM transactions t
		JOIN products p ON p.id = t.product_id
		WHERE t.amount < 0
		  AND NOT p.is_admin_product
		  AND t.created_at >= $1 AND t.created_at <= $2
		GROUP BY p.id, p.name, p.category
		ORDER BY SUM(t.quantity) DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("productos más vendidos: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSalesResult
	for rows.Next() {
		var res repository.ProductSalesResult
		if err := rows.Scan(&res.ProductID, &res.ProductName, &res.Category,
			&res.UnitsSold, &res.Revenue); err != nil {
			return nil, fmt.Errorf("escanear productos más vendidos: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
