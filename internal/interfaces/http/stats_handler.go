package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// StatsHandler maneja las estadísticas de venta de la pantalla de administración.
type StatsHandler struct {
	uc  *usecase.StatsUseCase
	log *logger.Logger
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, log: log}
}

const statsDateLayout = "2006-01-02"

// Overview godoc
// @Summary      Ventas por categoría y productos más vendidos (solo admin)
// @Tags         stats
// @Security     Cookie
// @Produce      json
// @Param        start_date  query  string  false  "Desde (2006-01-02); default 30 días atrás"
// @Param        end_date    query  string  false  "Hasta (2006-01-02); default hoy"
// @Param        top         query  int     false  "Tamaño del top de productos"  default(10)
// @Success      200  {object}  auth.Result[dto.StatsResponse]
// @Router       /api/stats [get]
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse(statsDateLayout, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "start_date inválido"})
		}
		start = parsed
	}
	if s := c.Query("end_date"); s != "" {
		parsed, err := time.Parse(statsDateLayout, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "end_date inválido"})
		}
		// Inclusivo: hasta el último instante del día
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(_ *entity.User) (*dto.StatsResponse, error) {
			return h.uc.Overview(c.Context(), start, end, c.QueryInt("top", 10))
		})
	return writeResult(c, res)
}
