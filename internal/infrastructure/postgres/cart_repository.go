package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// CartRepository implementación PostgreSQL de los snapshots de carrito.
type CartRepository struct {
	db Querier
}

// NewCartRepository crea un repositorio de carritos.
func NewCartRepository(db Querier) repository.CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Get(userID int64) (*entity.CartSnapshot, error) {
	query := `SELECT user_id, payload, updated_at FROM cart_snapshots WHERE user_id = $1`

	snapshot := &entity.CartSnapshot{}
	err := r.db.QueryRow(context.Background(), query, userID).Scan(
		&snapshot.UserID, &snapshot.Payload, &snapshot.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener carrito: %w", err)
	}
	return snapshot, nil
}

func (r *CartRepository) Put(userID int64, payload json.RawMessage) error {
	query := `
		INSERT INTO cart_snapshots (user_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`

	if _, err := r.db.Exec(context.Background(), query, userID, payload); err != nil {
		return fmt.Errorf("guardar carrito: %w", err)
	}
	return nil
}

func (r *CartRepository) Delete(userID int64) error {
	if _, err := r.db.Exec(context.Background(),
		`DELETE FROM cart_snapshots WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("eliminar carrito: %w", err)
	}
	return nil
}
