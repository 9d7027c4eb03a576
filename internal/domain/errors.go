package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("socio no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrMemberNoExists   = errors.New("el número de socio ya está registrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthenticated  = errors.New("sesión no iniciada")
	ErrUnauthorized     = errors.New("acceso denegado")
	ErrMeasurementInUse = errors.New("la medida está en uso por uno o más productos")
	ErrAdminProduct     = errors.New("producto administrativo no permitido en compras")
	ErrOpenPrice        = errors.New("producto de precio abierto sin precio indicado")
)
