package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción, entregando
// repositorios atados a la tx. Implementa ledger.TxRunner.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner crea un runner de transacciones sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una transacción, construye los repositorios sobre ella y ejecuta fn.
// Commit si fn devuelve nil; rollback en cualquier otro caso.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewTransactionRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
