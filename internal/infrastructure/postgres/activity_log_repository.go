package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// ActivityLogRepository implementación PostgreSQL del log de actividad.
type ActivityLogRepository struct {
	db Querier
}

// NewActivityLogRepository crea un repositorio del log de actividad.
func NewActivityLogRepository(db Querier) repository.ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(context.Background(), query,
		log.UserID, log.Action, log.Details,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insertar log de actividad: %w", err)
	}
	return nil
}

func (r *ActivityLogRepository) Query(filter repository.ActivityLogFilter) ([]entity.ActivityLogRow, error) {
	query := `
		SELECT l.id, l.user_id, l.action, l.details, l.created_at,
		       COALESCE(u.member_no, ''), COALESCE(u.name, '')
		FROM activity_logs l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE ($1::timestamptz IS NULL OR l.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR l.created_at <= $2)
		  AND ($3::bigint IS NULL OR l.user_id = $3)
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $4`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(context.Background(), query,
		filter.StartDate, filter.EndDate, filter.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("consultar log de actividad: %w", err)
	}
	defer rows.Close()

	var result []entity.ActivityLogRow
	for rows.Next() {
		var row entity.ActivityLogRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.Action, &row.Details, &row.CreatedAt,
			&row.MemberNo, &row.UserName,
		); err != nil {
			return nil, fmt.Errorf("escanear log de actividad: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
