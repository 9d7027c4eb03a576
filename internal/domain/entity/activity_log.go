package entity

import (
	"encoding/json"
	"time"
)

// Acciones administrativas registradas en el log de actividad.
const (
	ActionUserCreated     = "user_created"
	ActionUserUpdated     = "user_updated"
	ActionPasswordReset   = "password_reset"
	ActionPasswordChanged = "password_changed"
	ActionProductCreated  = "product_created"
	ActionProductUpdated  = "product_updated"
	ActionProductToggled  = "product_toggled"
	ActionAdjustment      = "balance_adjustment"
	ActionMeasurementAdd  = "measurement_added"
	ActionMeasurementDel  = "measurement_deleted"
	ActionLogin           = "login"
)

// ActivityLog registro append-only de una acción administrativa.
// UserID es el socio actuante (nil para acciones del sistema).
type ActivityLog struct {
	ID        int64
	Action    string
	Details   json.RawMessage
	UserID    *int64
	CreatedAt time.Time
}

// ActivityLogRow fila de consulta con los datos del socio ya resueltos.
type ActivityLogRow struct {
	ActivityLog
	MemberNo string
	UserName string
}
