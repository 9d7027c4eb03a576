package repository

import "github.com/jhoicas/Barra-api/internal/domain/entity"

// ProductFilter criterios de listado del catálogo.
// ShopOnly excluye además los productos especiales y administrativos
// (la pantalla de compra solo muestra el catálogo normal).
type ProductFilter struct {
	Query           string
	Category        entity.Category
	IncludeDisabled bool
	ShopOnly        bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByIDs(ids []int64) ([]*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, error)
	// CountByMeasure cuenta productos que referencian una medida (pre-check
	// antes de eliminarla).
	CountByMeasure(measureID int64) (int, error)
}
