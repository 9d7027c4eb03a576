package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// ProductRepository implementación PostgreSQL de repository.ProductRepository.
type ProductRepository struct {
	db Querier
}

// NewProductRepository crea un repositorio de productos.
func NewProductRepository(db Querier) repository.ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, category, price, measure_id, disabled,
	is_special_product, is_admin_product, is_open_price, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.MeasureID, &p.Disabled,
		&p.IsSpecialProduct, &p.IsAdminProduct, &p.IsOpenPrice,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, price, measure_id, disabled,
			is_special_product, is_admin_product, is_open_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(context.Background(), query,
		product.Name, product.Category, product.Price, product.MeasureID,
		product.Disabled, product.IsSpecialProduct, product.IsAdminProduct,
		product.IsOpenPrice,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("crear producto: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRow(context.Background(), query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) GetByIDs(ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	rows, err := r.db.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("obtener productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear producto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(name) = LOWER($1)`

	p, err := scanProduct(r.db.QueryRow(context.Background(), query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener producto por nombre: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, measure_id = $5, disabled = $6,
			is_special_product = $7, is_admin_product = $8, is_open_price = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(context.Background(), query,
		product.ID, product.Name, product.Category, product.Price,
		product.MeasureID, product.Disabled, product.IsSpecialProduct,
		product.IsAdminProduct, product.IsOpenPrice,
	).Scan(&product.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrProductNotFound
	}
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("actualizar producto: %w", err)
	}
	return nil
}

func (r *ProductRepository) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category = $2)
		  AND ($3 OR NOT disabled)
		  AND (NOT $4 OR (NOT is_special_product AND NOT is_admin_product))
		ORDER BY category, name`

	rows, err := r.db.Query(context.Background(), query,
		filter.Query, string(filter.Category), filter.IncludeDisabled, filter.ShopOnly)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear producto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) CountByMeasure(measureID int64) (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE measure_id = $1`, measureID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar productos por medida: %w", err)
	}
	return count, nil
}
