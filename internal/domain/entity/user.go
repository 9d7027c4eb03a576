package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Permisos válidos para User.
const (
	PermissionDefault = "default"
	PermissionAdmin   = "admin"
)

// User representa un socio del bar. MemberNo es el número de socio asignado a
// mano (único, distinto del id interno). Password vacío significa "sin fijar:
// debe establecerse en el próximo login". Balance es la proyección materializada
// de la suma de sus transacciones; se actualiza atómicamente junto con cada
// inserción en el ledger.
type User struct {
	ID         int64
	MemberNo   string
	Name       string
	Password   string // hash bcrypt, o "" si está sin fijar
	Permission string // default, admin
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin indica si el socio tiene permiso de administración.
func (u *User) IsAdmin() bool {
	return u != nil && u.Permission == PermissionAdmin
}
