package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

// memCartRepo fake en memoria del snapshot de carrito.
type memCartRepo struct {
	snapshots map[int64]json.RawMessage
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{snapshots: map[int64]json.RawMessage{}}
}

func (r *memCartRepo) Get(userID int64) (*entity.CartSnapshot, error) {
	payload, ok := r.snapshots[userID]
	if !ok {
		return nil, nil
	}
	return &entity.CartSnapshot{UserID: userID, Payload: payload}, nil
}

func (r *memCartRepo) Put(userID int64, payload json.RawMessage) error {
	r.snapshots[userID] = payload
	return nil
}

func (r *memCartRepo) Delete(userID int64) error {
	delete(r.snapshots, userID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito — upsert opaco por socio
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_GuardaYRestaura(t *testing.T) {
	uc := usecase.NewCartUseCase(newMemCartRepo())

	payload := json.RawMessage(`{"items":[{"product_id":10,"quantity":2}]}`)
	require.NoError(t, uc.Put(7, payload))

	restaurado, err := uc.Get(7)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(restaurado),
		"el payload se devuelve tal cual, sin interpretarlo")
}

func TestCart_SinSnapshotDevuelveNil(t *testing.T) {
	uc := usecase.NewCartUseCase(newMemCartRepo())

	payload, err := uc.Get(99)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

// Un payload vacío se normaliza a JSON null para que la columna JSONB lo acepte.
func TestCart_PayloadVacioSeNormaliza(t *testing.T) {
	repo := newMemCartRepo()
	uc := usecase.NewCartUseCase(repo)

	require.NoError(t, uc.Put(7, nil))
	assert.Equal(t, json.RawMessage("null"), repo.snapshots[7])
}

func TestCart_ClearEliminaElSnapshot(t *testing.T) {
	uc := usecase.NewCartUseCase(newMemCartRepo())

	require.NoError(t, uc.Put(7, json.RawMessage(`{"items":[]}`)))
	require.NoError(t, uc.Clear(7))

	payload, err := uc.Get(7)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestCart_UnSnapshotPorSocio(t *testing.T) {
	uc := usecase.NewCartUseCase(newMemCartRepo())

	require.NoError(t, uc.Put(7, json.RawMessage(`{"items":[{"product_id":10,"quantity":1}]}`)))
	require.NoError(t, uc.Put(7, json.RawMessage(`{"items":[{"product_id":11,"quantity":3}]}`)))

	payload, err := uc.Get(7)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"product_id":11,"quantity":3}]}`, string(payload),
		"el segundo guardado reemplaza al primero")
}
