package repository

import (
	"encoding/json"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

// CartRepository persiste la copia opaca del carrito por socio (upsert).
type CartRepository interface {
	Get(userID int64) (*entity.CartSnapshot, error)
	Put(userID int64, payload json.RawMessage) error
	Delete(userID int64) error
}
