package auth

import (
	"errors"

	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// Requirement describe qué exige una mutación del que la invoca.
// AllowSelf permite la excepción de autoservicio: un socio sin permiso admin
// puede operar sobre sí mismo (ej. cambiar su propio password) cuando
// SelfUserID coincide con su id.
type Requirement struct {
	AdminOnly  bool
	AllowSelf  bool
	SelfUserID int64
}

// ResultError error estructurado visible para el cliente. El detalle interno
// nunca sale de aquí: se registra en el logger del servidor.
type ResultError struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Result envoltura de toda mutación protegida: o Success con Data, o Error.
// Ningún error cruza este borde sin convertirse en ResultError.
type Result[T any] struct {
	Success bool         `json:"success"`
	Data    T            `json:"data,omitempty"`
	Error   *ResultError `json:"error,omitempty"`
}

// Authorize evalúa la política central de permisos: identidad resuelta +
// requisito → permitir o denegar. Es el único punto del sistema que compara
// roles.
func Authorize(user *entity.User, req Requirement) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if req.AdminOnly && !user.IsAdmin() {
		if req.AllowSelf && req.SelfUserID == user.ID {
			return nil
		}
		return domain.ErrUnauthorized
	}
	return nil
}

// WithAuth ejecuta action con la identidad del socio si la política lo permite.
// Cualquier error (de la política o de action) se captura y se devuelve como
// ResultError; el detalle queda en el log del servidor.
func WithAuth[T any](log *logger.Logger, user *entity.User, req Requirement, action func(caller *entity.User) (T, error)) Result[T] {
	if err := Authorize(user, req); err != nil {
		return failure[T](log, err)
	}
	data, err := action(user)
	if err != nil {
		return failure[T](log, err)
	}
	return Result[T]{Success: true, Data: data}
}

func failure[T any](log *logger.Logger, err error) Result[T] {
	code, title, description := Describe(err)
	if code == CodeUnexpected && log != nil {
		log.Error().Err(err).Msg("error inesperado en mutación protegida")
	}
	return Result[T]{Success: false, Error: &ResultError{Code: code, Title: title, Description: description}}
}

// Códigos de error del envelope, uno por clase de fallo.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeDependencyInUse = "DEPENDENCY_IN_USE"
	CodeUnexpected      = "UNEXPECTED"
)

// Describe traduce un error de dominio a código + título + descripción
// legibles. Errores no reconocidos se reportan de forma genérica.
func Describe(err error) (code, title, description string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return CodeUnauthenticated, "No autenticado", "Debes iniciar sesión para realizar esta acción."
	case errors.Is(err, domain.ErrUnauthorized):
		return CodeUnauthorized, "No autorizado", "No tienes permiso para realizar esta acción."
	case errors.Is(err, domain.ErrMemberNoExists):
		return CodeConflict, "Conflicto", "Ya existe un socio con ese número."
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		return CodeNotFound, "No encontrado", "El recurso solicitado no existe."
	case errors.Is(err, domain.ErrMeasurementInUse):
		return CodeDependencyInUse, "Medida en uso", "La medida está siendo usada por uno o más productos."
	case errors.Is(err, domain.ErrAdminProduct), errors.Is(err, domain.ErrOpenPrice), errors.Is(err, domain.ErrInvalidInput):
		return CodeInvalidInput, "Entrada inválida", "Revisa los datos enviados e intenta de nuevo."
	case errors.Is(err, domain.ErrDuplicate):
		return CodeConflict, "Conflicto", "El recurso ya existe."
	default:
		return CodeUnexpected, "Error", "Ocurrió un error inesperado. Intenta de nuevo."
	}
}
