package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// MeasurementRepository implementación PostgreSQL de repository.MeasurementRepository.
type MeasurementRepository struct {
	db Querier
}

// NewMeasurementRepository crea un repositorio de medidas.
func NewMeasurementRepository(db Querier) repository.MeasurementRepository {
	return &MeasurementRepository{db: db}
}

func (r *MeasurementRepository) Create(m *entity.Measurement) error {
	query := `INSERT INTO measurements (unit, amount) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRow(context.Background(), query, m.Unit, m.Amount).Scan(&m.ID); err != nil {
		return fmt.Errorf("crear medida: %w", err)
	}
	return nil
}

func (r *MeasurementRepository) GetByID(id int64) (*entity.Measurement, error) {
	query := `SELECT id, unit, amount FROM measurements WHERE id = $1`

	m := &entity.Measurement{}
	err := r.db.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.Unit, &m.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener medida: %w", err)
	}
	return m, nil
}

func (r *MeasurementRepository) List() ([]*entity.Measurement, error) {
	query := `SELECT id, unit, amount FROM measurements ORDER BY unit, amount`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar medidas: %w", err)
	}
	defer rows.Close()

	var measurements []*entity.Measurement
	for rows.Next() {
		m := &entity.Measurement{}
		if err := rows.Scan(&m.ID, &m.Unit, &m.Amount); err != nil {
			return nil, fmt.Errorf("escanear medida: %w", err)
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

func (r *MeasurementRepository) Delete(id int64) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM measurements WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrMeasurementInUse
		}
		return fmt.Errorf("eliminar medida: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
