package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// UserHandler maneja la administración de socios (protegido, solo admin salvo
// el cambio de contraseña propio).
type UserHandler struct {
	uc       *usecase.UserUseCase
	recorder auth.Recorder
	log      *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, recorder auth.Recorder, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, recorder: recorder, log: log}
}

func paramID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// List godoc
// @Summary      Listar socios (paginado, orden por número de socio)
// @Tags         users
// @Security     Cookie
// @Produce      json
// @Param        query  query  string  false  "Busca por nombre o número"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  auth.Result[dto.UserListResponse]
// @Failure      403  {object}  auth.Result[dto.UserListResponse]
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(_ *entity.User) (*dto.UserListResponse, error) {
			return h.uc.List(c.Query("query"), c.QueryInt("page", 1), c.QueryInt("limit", 20))
		})
	return writeResult(c, res)
}

// GetByID godoc
// @Summary      Obtener socio por ID (admin, o el propio socio)
// @Tags         users
// @Security     Cookie
// @Produce      json
// @Param        id  path  int  true  "ID del socio"
// @Success      200  {object}  auth.Result[dto.UserResponse]
// @Failure      404  {object}  auth.Result[dto.UserResponse]
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c),
		auth.Requirement{AdminOnly: true, AllowSelf: true, SelfUserID: id},
		func(_ *entity.User) (*dto.UserResponse, error) {
			out, err := h.uc.GetByID(id)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, domain.ErrUserNotFound
			}
			return out, nil
		})
	return writeResult(c, res)
}

// Create godoc
// @Summary      Crear socio (solo admin)
// @Tags         users
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del socio"
// @Success      200  {object}  auth.Result[dto.UserResponse]
// @Failure      409  {object}  auth.Result[dto.UserResponse]
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (*dto.UserResponse, error) {
			out, err := h.uc.Create(in)
			if err != nil {
				return nil, err
			}
			h.recorder.Record(entity.ActionUserCreated, map[string]any{
				"member_no": out.MemberNo, "name": out.Name,
			}, &caller.ID)
			return out, nil
		})
	return writeResult(c, res)
}

// Update godoc
// @Summary      Editar socio (solo admin)
// @Tags         users
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del socio"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a cambiar"
// @Success      200  {object}  auth.Result[dto.UserResponse]
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (*dto.UserResponse, error) {
			out, err := h.uc.Update(id, in)
			if err != nil {
				return nil, err
			}
			h.recorder.Record(entity.ActionUserUpdated, map[string]any{
				"user_id": id, "member_no": out.MemberNo,
			}, &caller.ID)
			return out, nil
		})
	return writeResult(c, res)
}

// ResetPassword godoc
// @Summary      Restablecer contraseña de un socio a "sin fijar" (solo admin)
// @Tags         users
// @Security     Cookie
// @Produce      json
// @Param        id  path  int  true  "ID del socio"
// @Success      200  {object}  auth.Result[bool]
// @Router       /api/users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (bool, error) {
			if err := h.uc.ResetPassword(id); err != nil {
				return false, err
			}
			h.recorder.Record(entity.ActionPasswordReset, map[string]any{"user_id": id}, &caller.ID)
			return true, nil
		})
	return writeResult(c, res)
}

// ChangePassword godoc
// @Summary      Fijar nueva contraseña (el propio socio, o un admin)
// @Tags         users
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del socio"
// @Param        body  body  dto.ChangePasswordRequest  true  "Nueva contraseña"
// @Success      200  {object}  auth.Result[bool]
// @Router       /api/users/{id}/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c),
		auth.Requirement{AdminOnly: true, AllowSelf: true, SelfUserID: id},
		func(caller *entity.User) (bool, error) {
			if err := h.uc.ChangePassword(id, in.Password); err != nil {
				return false, err
			}
			h.recorder.Record(entity.ActionPasswordChanged, map[string]any{"user_id": id}, &caller.ID)
			return true, nil
		})
	return writeResult(c, res)
}
