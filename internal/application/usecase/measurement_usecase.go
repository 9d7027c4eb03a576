package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// MeasurementUseCase medidas de producto (ej. 33 cl).
type MeasurementUseCase struct {
	repo        repository.MeasurementRepository
	productRepo repository.ProductRepository
}

// NewMeasurementUseCase construye el caso de uso.
func NewMeasurementUseCase(repo repository.MeasurementRepository, productRepo repository.ProductRepository) *MeasurementUseCase {
	return &MeasurementUseCase{repo: repo, productRepo: productRepo}
}

// List devuelve todas las medidas.
func (uc *MeasurementUseCase) List() ([]dto.MeasurementResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeasurementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MeasurementResponse{ID: m.ID, Amount: m.Amount, Unit: m.Unit})
	}
	return out, nil
}

// Create registra una medida nueva.
func (uc *MeasurementUseCase) Create(in dto.CreateMeasurementRequest) (*dto.MeasurementResponse, error) {
	if in.Unit == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Measurement{Amount: in.Amount, Unit: in.Unit}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return &dto.MeasurementResponse{ID: m.ID, Amount: m.Amount, Unit: m.Unit}, nil
}

// Delete elimina una medida. Falla con ErrMeasurementInUse mientras algún
// producto la referencie (pre-check; la FK de la DB cubre la ventana de carrera).
func (uc *MeasurementUseCase) Delete(id int64) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByMeasure(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrMeasurementInUse
	}
	return uc.repo.Delete(id)
}
