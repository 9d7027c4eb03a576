package repository

import "github.com/jhoicas/Barra-api/internal/domain/entity"

// MeasurementRepository define el puerto de persistencia para Measurement.
type MeasurementRepository interface {
	Create(m *entity.Measurement) error
	GetByID(id int64) (*entity.Measurement, error)
	List() ([]*entity.Measurement, error)
	Delete(id int64) error
}
