package dto

import (
	"encoding/json"
	"time"
)

// ActivityLogFilters criterios de consulta del log (query params).
// Fechas en formato 2006-01-02; la fecha final se extiende hasta el fin del día.
type ActivityLogFilters struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	MemberNo  string `query:"member_no"`
}

// ActivityLogResponse fila del log con los datos del socio resueltos.
type ActivityLogResponse struct {
	ID        int64           `json:"id"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details"`
	UserID    *int64          `json:"user_id,omitempty"`
	MemberNo  string          `json:"member_no,omitempty"`
	UserName  string          `json:"user_name,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ActivityLogListResponse listado del log de actividad.
type ActivityLogListResponse struct {
	Data []ActivityLogResponse `json:"data"`
}
