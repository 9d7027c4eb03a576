package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/jwt"
)

// SessionCookie nombre de la cookie httpOnly que transporta el token de sesión.
const SessionCookie = "token"

// LocalUser key de c.Locals donde el middleware deja el socio resuelto.
const LocalUser = "current_user"

// AuthMiddleware resuelve la identidad del socio desde la cookie de sesión
// (o un Bearer token, para clientes de API). Es tolerante: una petición sin
// token o con token inválido continúa como anónima y cada operación decide
// si exige identidad. El socio se carga fresco de la DB en cada petición:
// el rol del token nunca es autoritativo.
func AuthMiddleware(jwtSecret string, authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			tokenString = bearerToken(c)
		}
		if tokenString == "" {
			return c.Next()
		}

		memberNo, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		user, err := authUC.Resolve(memberNo)
		if err != nil || user == nil {
			return c.Next()
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetCurrentUser devuelve el socio autenticado o nil si la petición es anónima.
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}
