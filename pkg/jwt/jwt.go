package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la sesión.
// MemberNo identifica al socio (no el id interno); Role evita consultar la DB
// en decisiones de autorización de bajo riesgo; RememberMe marca la variante
// de expiración larga para que el cliente pueda pre-rellenar el login.
type Claims struct {
	jwt.RegisteredClaims
	MemberNo   string `json:"member_no"`
	Role       string `json:"role"` // "default" | "admin"
	RememberMe bool   `json:"remember_me,omitempty"`
}

// Generate genera un token de sesión firmado con member_no, role y remember_me.
func Generate(secret, memberNo, role string, rememberMe bool, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   memberNo,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		MemberNo:   memberNo,
		Role:       role,
		RememberMe: rememberMe,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve member_no, role y remember_me.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (memberNo, role string, rememberMe bool, err error) {
	if secret == "" {
		return "", "", false, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", false, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", false, fmt.Errorf("claims inválidos")
	}
	return claims.MemberNo, claims.Role, claims.RememberMe, nil
}
