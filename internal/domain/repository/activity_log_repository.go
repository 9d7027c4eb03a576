package repository

import (
	"time"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

// ActivityLogFilter criterios de consulta del log de actividad.
// EndDate ya viene extendido al final del día por el caso de uso.
type ActivityLogFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    *int64
	Limit     int
}

// ActivityLogRepository define el puerto de persistencia para el log de
// actividad (append-only).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	// Query devuelve las filas más recientes primero, con member_no y nombre
	// del socio resueltos.
	Query(filter ActivityLogFilter) ([]entity.ActivityLogRow, error)
}
