package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

type memMeasurementRepo struct {
	measurements map[int64]*entity.Measurement
	nextID       int64
}

func newMemMeasurementRepo() *memMeasurementRepo {
	return &memMeasurementRepo{measurements: map[int64]*entity.Measurement{}}
}

func (f *memMeasurementRepo) Create(m *entity.Measurement) error {
	f.nextID++
	m.ID = f.nextID
	f.measurements[m.ID] = m
	return nil
}

func (f *memMeasurementRepo) GetByID(id int64) (*entity.Measurement, error) {
	m, ok := f.measurements[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (f *memMeasurementRepo) List() ([]*entity.Measurement, error) {
	out := make([]*entity.Measurement, 0, len(f.measurements))
	for _, m := range f.measurements {
		out = append(out, m)
	}
	return out, nil
}

func (f *memMeasurementRepo) Delete(id int64) error {
	if _, ok := f.measurements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.measurements, id)
	return nil
}

// memProductRepo fake mínimo: solo lo que los casos de uso de medidas y
// catálogo necesitan.
type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]*entity.Product{}}
}

func (f *memProductRepo) Create(p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	copia := *p
	f.products[p.ID] = &copia
	return nil
}

func (f *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *memProductRepo) GetByIDs(ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *memProductRepo) Update(p *entity.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	copia := *p
	f.products[p.ID] = &copia
	return nil
}

func (f *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if !filter.IncludeDisabled && !filter.ShopOnly && p.Disabled {
			continue
		}
		if filter.ShopOnly && (p.Disabled || p.IsSpecialProduct || p.IsAdminProduct) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *memProductRepo) CountByMeasure(measureID int64) (int, error) {
	count := 0
	for _, p := range f.products {
		if p.MeasureID != nil && *p.MeasureID == measureID {
			count++
		}
	}
	return count, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Medidas
// ──────────────────────────────────────────────────────────────────────────────

func TestMeasurementCreate_Validacion(t *testing.T) {
	uc := usecase.NewMeasurementUseCase(newMemMeasurementRepo(), newMemProductRepo())

	_, err := uc.Create(dto.CreateMeasurementRequest{Unit: "", Amount: decimal.NewFromInt(33)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unidad vacía")

	_, err = uc.Create(dto.CreateMeasurementRequest{Unit: "cl", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva")

	out, err := uc.Create(dto.CreateMeasurementRequest{Unit: "cl", Amount: decimal.NewFromInt(33)})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
}

// Una medida referenciada por un producto no puede eliminarse.
func TestMeasurementDelete_BloqueadaSiEstaEnUso(t *testing.T) {
	measurements := newMemMeasurementRepo()
	products := newMemProductRepo()
	uc := usecase.NewMeasurementUseCase(measurements, products)

	out, err := uc.Create(dto.CreateMeasurementRequest{Unit: "cl", Amount: decimal.NewFromInt(33)})
	require.NoError(t, err)

	require.NoError(t, products.Create(&entity.Product{
		Name: "Cerveza", Category: entity.CategoryBeer,
		Price: decimal.NewFromInt(5), MeasureID: &out.ID,
	}))

	err = uc.Delete(out.ID)
	assert.ErrorIs(t, err, domain.ErrMeasurementInUse)

	// Sin productos que la referencien, la eliminación procede
	libre, err := uc.Create(dto.CreateMeasurementRequest{Unit: "l", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.NoError(t, uc.Delete(libre.ID))
}

func TestMeasurementDelete_Inexistente(t *testing.T) {
	uc := usecase.NewMeasurementUseCase(newMemMeasurementRepo(), newMemProductRepo())
	assert.ErrorIs(t, uc.Delete(999), domain.ErrNotFound)
}
