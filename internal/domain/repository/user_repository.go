package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// AdjustBalance incrementa el saldo con una expresión atómica en la DB
// (balance = balance + delta), nunca leer-modificar-escribir en memoria.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByMemberNo(memberNo string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id int64, passwordHash string) error
	AdjustBalance(id int64, delta decimal.Decimal) error
	// List ordena por número de socio tratado como entero (los no numéricos
	// van al final, en orden lexicográfico). Query filtra por nombre o número.
	List(query string, limit, offset int) ([]*entity.User, error)
	Count(query string) (int, error)
}
