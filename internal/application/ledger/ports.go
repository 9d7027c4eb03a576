package ledger

import (
	"context"

	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del lote de checkout:
// o se insertan todas las líneas y se actualiza el saldo, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		userRepo repository.UserRepository,
	) error) error
}
