package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// MeasurementHandler maneja las medidas de producto.
type MeasurementHandler struct {
	uc       *usecase.MeasurementUseCase
	recorder auth.Recorder
	log      *logger.Logger
}

// NewMeasurementHandler construye el handler.
func NewMeasurementHandler(uc *usecase.MeasurementUseCase, recorder auth.Recorder, log *logger.Logger) *MeasurementHandler {
	return &MeasurementHandler{uc: uc, recorder: recorder, log: log}
}

// List godoc
// @Summary      Listar medidas
// @Tags         measurements
// @Security     Cookie
// @Produce      json
// @Success      200  {object}  auth.Result[[]dto.MeasurementResponse]
// @Router       /api/measurements [get]
func (h *MeasurementHandler) List(c *fiber.Ctx) error {
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{},
		func(_ *entity.User) ([]dto.MeasurementResponse, error) {
			return h.uc.List()
		})
	return writeResult(c, res)
}

// Create godoc
// @Summary      Registrar medida (solo admin)
// @Tags         measurements
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMeasurementRequest  true  "Medida"
// @Success      200  {object}  auth.Result[dto.MeasurementResponse]
// @Router       /api/measurements [post]
func (h *MeasurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMeasurementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (*dto.MeasurementResponse, error) {
			out, err := h.uc.Create(in)
			if err != nil {
				return nil, err
			}
			h.recorder.Record(entity.ActionMeasurementAdd, map[string]any{
				"measurement_id": out.ID, "unit": out.Unit,
			}, &caller.ID)
			return out, nil
		})
	return writeResult(c, res)
}

// Delete godoc
// @Summary      Eliminar medida sin productos asociados (solo admin)
// @Tags         measurements
// @Security     Cookie
// @Produce      json
// @Param        id  path  int  true  "ID de la medida"
// @Success      200  {object}  auth.Result[bool]
// @Failure      409  {object}  auth.Result[bool]
// @Router       /api/measurements/{id} [delete]
func (h *MeasurementHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (bool, error) {
			if err := h.uc.Delete(id); err != nil {
				return false, err
			}
			h.recorder.Record(entity.ActionMeasurementDel, map[string]any{"measurement_id": id}, &caller.ID)
			return true, nil
		})
	return writeResult(c, res)
}
