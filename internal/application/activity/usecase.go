package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// UseCase log de actividad administrativa: registro append-only y consulta
// filtrada.
type UseCase struct {
	repo     repository.ActivityLogRepository
	userRepo repository.UserRepository
	log      *logger.Logger
}

// New construye el caso de uso del log de actividad.
func New(repo repository.ActivityLogRepository, userRepo repository.UserRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, userRepo: userRepo, log: log.Module("activity")}
}

// Record anota una acción. Nunca falla hacia el que llama: un error al
// escribir el log no puede tumbar la acción principal, solo se registra como
// warning del servidor.
func (uc *UseCase) Record(action string, details any, actingUserID *int64) {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("null")
	}
	entry := &entity.ActivityLog{
		Action:    action,
		Details:   payload,
		UserID:    actingUserID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("no se pudo escribir el log de actividad")
	}
}

// Query consulta el log, más recientes primero. La fecha final se extiende
// hasta el fin de su día; un member_no desconocido produce resultado vacío en
// lugar de ignorar el filtro.
func (uc *UseCase) Query(in dto.ActivityLogFilters) ([]dto.ActivityLogResponse, error) {
	rows, err := uc.QueryRows(in)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityLogResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ActivityLogResponse{
			ID:        row.ID,
			Action:    row.Action,
			Details:   row.Details,
			UserID:    row.UserID,
			MemberNo:  row.MemberNo,
			UserName:  row.UserName,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

// QueryRows variante de Query que devuelve las filas de dominio sin mapear
// (la usa la exportación XLSX).
func (uc *UseCase) QueryRows(in dto.ActivityLogFilters) ([]entity.ActivityLogRow, error) {
	filter := repository.ActivityLogFilter{}

	if in.StartDate != "" {
		start, _, err := parseDate(in.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date", domain.ErrInvalidInput)
		}
		filter.StartDate = &start
	}
	if in.EndDate != "" {
		end, dateOnly, err := parseDate(in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date", domain.ErrInvalidInput)
		}
		if dateOnly {
			// Inclusivo: hasta el último instante del día
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &end
	}
	if in.MemberNo != "" {
		user, err := uc.userRepo.GetByMemberNo(in.MemberNo)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return []entity.ActivityLogRow{}, nil
		}
		filter.UserID = &user.ID
	}

	return uc.repo.Query(filter)
}

func parseDate(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t, false, err
}
