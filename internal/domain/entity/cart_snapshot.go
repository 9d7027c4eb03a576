package entity

import (
	"encoding/json"
	"time"
)

// CartSnapshot copia opaca del carrito del cliente, una por socio.
// El servidor no interpreta el payload: el carrito vive en el cliente y aquí
// solo se persiste para restaurarlo entre sesiones.
type CartSnapshot struct {
	UserID    int64
	Payload   json.RawMessage
	UpdatedAt time.Time
}
