package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// UserRepository implementación PostgreSQL de repository.UserRepository.
type UserRepository struct {
	db Querier
}

// NewUserRepository crea un repositorio de socios sobre el pool o una tx.
func NewUserRepository(db Querier) repository.UserRepository {
	return &UserRepository{db: db}
}

// Los números de socio se asignan a mano y casi siempre son numéricos, pero el
// campo es texto. Ordenamos los numéricos como enteros primero y el resto al
// final en orden lexicográfico.
const memberNoOrder = `
	ORDER BY (CASE WHEN member_no ~ '^[0-9]+$' THEN member_no::bigint END) NULLS LAST,
	         member_no`

func (r *UserRepository) Create(user *entity.User) error {
	query := `
		INSERT INTO users (member_no, name, password, permission, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(context.Background(), query,
		user.MemberNo, user.Name, user.Password, user.Permission, user.Balance,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMemberNoExists
		}
		return fmt.Errorf("crear usuario: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, member_no, name, password, permission, balance, created_at, updated_at
		FROM users WHERE id = $1`

	user := &entity.User{}
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&user.ID, &user.MemberNo, &user.Name, &user.Password,
		&user.Permission, &user.Balance, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByMemberNo(memberNo string) (*entity.User, error) {
	query := `
		SELECT id, member_no, name, password, permission, balance, created_at, updated_at
		FROM users WHERE member_no = $1`

	user := &entity.User{}
	err := r.db.QueryRow(context.Background(), query, memberNo).Scan(
		&user.ID, &user.MemberNo, &user.Name, &user.Password,
		&user.Permission, &user.Balance, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener usuario por número de socio: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET member_no = $2, name = $3, permission = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(context.Background(), query,
		user.ID, user.MemberNo, user.Name, user.Permission,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMemberNoExists
		}
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(id int64, passwordHash string) error {
	query := `UPDATE users SET password = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("actualizar contraseña: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AdjustBalance incrementa el saldo con una sola expresión SQL: nunca
// leer-modificar-escribir en memoria, para que los checkouts concurrentes no
// se pisen entre sí.
func (r *UserRepository) AdjustBalance(id int64, delta decimal.Decimal) error {
	query := `UPDATE users SET balance = balance + $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("ajustar saldo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(search string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, member_no, name, password, permission, balance, created_at, updated_at
		FROM users
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR member_no ILIKE '%' || $1 || '%')` +
		memberNoOrder + `
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := &entity.User{}
		if err := rows.Scan(
			&user.ID, &user.MemberNo, &user.Name, &user.Password,
			&user.Permission, &user.Balance, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("escanear usuario: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Count(search string) (int, error) {
	query := `
		SELECT COUNT(*) FROM users
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR member_no ILIKE '%' || $1 || '%')`

	var count int
	if err := r.db.QueryRow(context.Background(), query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("contar usuarios: %w", err)
	}
	return count, nil
}
