package usecase

import (
	"encoding/json"

	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// CartUseCase copia opaca del carrito del cliente, una por socio. El servidor
// no interpreta el payload; solo lo guarda para restaurarlo entre sesiones.
type CartUseCase struct {
	repo repository.CartRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository) *CartUseCase {
	return &CartUseCase{repo: repo}
}

// Get devuelve el snapshot del carrito; nil si no hay ninguno guardado.
func (uc *CartUseCase) Get(userID int64) (json.RawMessage, error) {
	snap, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}
	return snap.Payload, nil
}

// Put guarda (upsert) el snapshot del carrito.
func (uc *CartUseCase) Put(userID int64, payload json.RawMessage) error {
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return uc.repo.Put(userID, payload)
}

// Clear elimina el snapshot (tras un checkout exitoso).
func (uc *CartUseCase) Clear(userID int64) error {
	return uc.repo.Delete(userID)
}
