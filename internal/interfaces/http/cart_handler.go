package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// CartHandler maneja el snapshot del carrito del socio autenticado. El payload
// es opaco para el servidor.
type CartHandler struct {
	uc  *usecase.CartUseCase
	log *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Recuperar el carrito guardado del socio autenticado
// @Tags         cart
// @Security     Cookie
// @Produce      json
// @Success      200  {object}  auth.Result[json.RawMessage]
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{},
		func(caller *entity.User) (json.RawMessage, error) {
			return h.uc.Get(caller.ID)
		})
	return writeResult(c, res)
}

// Put godoc
// @Summary      Guardar el carrito del socio autenticado (upsert)
// @Tags         cart
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Success      200  {object}  auth.Result[bool]
// @Router       /api/cart [put]
func (h *CartHandler) Put(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) > 0 && !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "el carrito debe ser JSON válido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{},
		func(caller *entity.User) (bool, error) {
			if err := h.uc.Put(caller.ID, json.RawMessage(body)); err != nil {
				return false, err
			}
			return true, nil
		})
	return writeResult(c, res)
}

// Clear godoc
// @Summary      Vaciar el carrito guardado del socio autenticado
// @Tags         cart
// @Security     Cookie
// @Produce      json
// @Success      200  {object}  auth.Result[bool]
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{},
		func(caller *entity.User) (bool, error) {
			if err := h.uc.Clear(caller.ID); err != nil {
				return false, err
			}
			return true, nil
		})
	return writeResult(c, res)
}
