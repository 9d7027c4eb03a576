package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
)

// statusFor traduce el código del envelope a un status HTTP.
func statusFor(code string) int {
	switch code {
	case auth.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case auth.CodeUnauthorized:
		return fiber.StatusForbidden
	case auth.CodeNotFound:
		return fiber.StatusNotFound
	case auth.CodeConflict, auth.CodeDependencyInUse:
		return fiber.StatusConflict
	case auth.CodeInvalidInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// writeResult serializa el envelope de una operación protegida con el status
// HTTP que corresponde a su código de error.
func writeResult[T any](c *fiber.Ctx, res auth.Result[T]) error {
	if !res.Success {
		return c.Status(statusFor(res.Error.Code)).JSON(res)
	}
	return c.JSON(res)
}
