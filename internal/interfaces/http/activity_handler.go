package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/activity"
	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// ActivityHandler maneja la consulta del log de actividad (solo admin).
type ActivityHandler struct {
	uc  *activity.UseCase
	log *logger.Logger
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *activity.UseCase, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{uc: uc, log: log}
}

// Query godoc
// @Summary      Consultar el log de actividad filtrado (solo admin)
// @Tags         activity
// @Security     Cookie
// @Produce      json
// @Param        start_date  query  string  false  "Desde (2006-01-02 o RFC3339)"
// @Param        end_date    query  string  false  "Hasta; la fecha sola cubre todo el día"
// @Param        member_no   query  string  false  "Filtra por socio"
// @Success      200  {object}  auth.Result[dto.ActivityLogListResponse]
// @Router       /api/activity-logs [get]
func (h *ActivityHandler) Query(c *fiber.Ctx) error {
	var in dto.ActivityLogFilters
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(_ *entity.User) (*dto.ActivityLogListResponse, error) {
			rows, err := h.uc.Query(in)
			if err != nil {
				return nil, err
			}
			return &dto.ActivityLogListResponse{Data: rows}, nil
		})
	return writeResult(c, res)
}
