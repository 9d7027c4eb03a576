package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// ProductHandler maneja el catálogo de productos.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	recorder auth.Recorder
	log      *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, recorder auth.Recorder, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, recorder: recorder, log: log}
}

// ListShop godoc
// @Summary      Catálogo de compra (sin deshabilitados ni administrativos)
// @Tags         products
// @Security     Cookie
// @Produce      json
// @Param        query     query  string  false  "Busca por nombre"
// @Param        category  query  string  false  "Filtra por categoría"
// @Success      200  {object}  auth.Result[dto.ProductListResponse]
// @Router       /api/shop/products [get]
func (h *ProductHandler) ListShop(c *fiber.Ctx) error {
	var in dto.ProductFilters
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{},
		func(_ *entity.User) (*dto.ProductListResponse, error) {
			return h.uc.ListShop(in)
		})
	return writeResult(c, res)
}

// List godoc
// @Summary      Listar todo el catálogo, deshabilitados incluidos (solo admin)
// @Tags         products
// @Security     Cookie
// @Produce      json
// @Param        query             query  string  false  "Busca por nombre"
// @Param        category          query  string  false  "Filtra por categoría"
// @Param        include_disabled  query  bool    false  "Incluir deshabilitados"
// @Success      200  {object}  auth.Result[dto.ProductListResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ProductFilters
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(_ *entity.User) (*dto.ProductListResponse, error) {
			return h.uc.List(in)
		})
	return writeResult(c, res)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Cookie
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  auth.Result[dto.ProductResponse]
// @Failure      404  {object}  auth.Result[dto.ProductResponse]
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{},
		func(_ *entity.User) (*dto.ProductResponse, error) {
			out, err := h.uc.GetByID(id)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, domain.ErrProductNotFound
			}
			return out, nil
		})
	return writeResult(c, res)
}

// Create godoc
// @Summary      Crear producto (solo admin)
// @Tags         products
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      200  {object}  auth.Result[dto.ProductResponse]
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (*dto.ProductResponse, error) {
			out, err := h.uc.Create(in)
			if err != nil {
				return nil, err
			}
			h.recorder.Record(entity.ActionProductCreated, map[string]any{
				"product_id": out.ID, "name": out.Name,
			}, &caller.ID)
			return out, nil
		})
	return writeResult(c, res)
}

// Update godoc
// @Summary      Editar producto (solo admin)
// @Tags         products
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a cambiar"
// @Success      200  {object}  auth.Result[dto.ProductResponse]
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (*dto.ProductResponse, error) {
			out, err := h.uc.Update(id, in)
			if err != nil {
				return nil, err
			}
			h.recorder.Record(entity.ActionProductUpdated, map[string]any{
				"product_id": id, "name": out.Name,
			}, &caller.ID)
			return out, nil
		})
	return writeResult(c, res)
}

// ToggleDisabled godoc
// @Summary      Habilitar/deshabilitar producto (solo admin)
// @Tags         products
// @Security     Cookie
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  auth.Result[dto.ProductResponse]
// @Router       /api/products/{id}/toggle [post]
func (h *ProductHandler) ToggleDisabled(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (*dto.ProductResponse, error) {
			out, err := h.uc.ToggleDisabled(id)
			if err != nil {
				return nil, err
			}
			h.recorder.Record(entity.ActionProductToggled, map[string]any{
				"product_id": id, "disabled": out.Disabled,
			}, &caller.ID)
			return out, nil
		})
	return writeResult(c, res)
}
