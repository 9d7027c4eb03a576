package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
)

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, userUC *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, userUC: userUC}
}

// Login godoc
// @Summary      Iniciar sesión por número de socio
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	user, token, expMinutes, err := h.uc.Login(in)
	if err != nil {
		code, _, _ := auth.Describe(err)
		if code == auth.CodeUnauthenticated || code == auth.CodeInvalidInput {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "número de socio o contraseña incorrectos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo iniciar sesión"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	out, err := h.userUC.GetByID(user.ID)
	if err != nil || out == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cargar el socio"})
	}
	return c.JSON(dto.LoginResponse{User: *out})
}

// Remember godoc
// @Summary      Renovar sesión a partir de un token "recuérdame"
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/remember [get]
func (h *AuthHandler) Remember(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión no iniciada"})
	}

	user, fresh, expMinutes, err := h.uc.Remember(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "la sesión no puede renovarse"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    fresh,
		Expires:  time.Now().Add(time.Duration(expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	out, err := h.userUC.GetByID(user.ID)
	if err != nil || out == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cargar el socio"})
	}
	return c.JSON(dto.LoginResponse{User: *out})
}

// Logout godoc
// @Summary      Cerrar sesión (borra la cookie)
// @Tags         auth
// @Produce      json
// @Success      204  "sin contenido"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Socio de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión no iniciada"})
	}
	out, err := h.userUC.GetByID(user.ID)
	if err != nil || out == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cargar el socio"})
	}
	return c.JSON(out)
}
