package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo. Los productos nunca se borran: los
// referenciados por transacciones solo se deshabilitan.
type ProductUseCase struct {
	repo        repository.ProductRepository
	measureRepo repository.MeasurementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, measureRepo repository.MeasurementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, measureRepo: measureRepo}
}

// List lista el catálogo con filtros: substring case-insensitive en el nombre,
// categoría exacta, deshabilitados excluidos salvo IncludeDisabled.
func (uc *ProductUseCase) List(in dto.ProductFilters) (*dto.ProductListResponse, error) {
	filter := repository.ProductFilter{
		Query:           in.Query,
		IncludeDisabled: in.IncludeDisabled,
	}
	if in.Category != "" {
		category := entity.Category(in.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		filter.Category = category
	}
	return uc.list(filter)
}

// ListShop lista solo lo comprable: sin deshabilitados, sin especiales y sin
// productos administrativos, pase lo que pase con los filtros.
func (uc *ProductUseCase) ListShop(in dto.ProductFilters) (*dto.ProductListResponse, error) {
	filter := repository.ProductFilter{
		Query:    in.Query,
		ShopOnly: true,
	}
	if in.Category != "" {
		category := entity.Category(in.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		filter.Category = category
	}
	return uc.list(filter)
}

func (uc *ProductUseCase) list(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Data: data}, nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Create crea un producto. El precio debe ser > 0 salvo precio abierto; la
// medida, si viene, debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := entity.Category(in.Category)
	if !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := validatePrice(in.Price, in.IsOpenPrice); err != nil {
		return nil, err
	}
	if in.MeasureID != nil {
		if err := uc.measureExists(*in.MeasureID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	product := &entity.Product{
		Name:             in.Name,
		Category:         category,
		Price:            in.Price,
		IsSpecialProduct: in.IsSpecialProduct,
		IsAdminProduct:   in.IsAdminProduct,
		IsOpenPrice:      in.IsOpenPrice,
		MeasureID:        in.MeasureID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita un producto campo a campo (punteros nil no se tocan).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		category := entity.Category(*in.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		product.Category = category
	}
	if in.IsOpenPrice != nil {
		product.IsOpenPrice = *in.IsOpenPrice
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price, product.IsOpenPrice); err != nil {
			return nil, err
		}
		product.Price = *in.Price
	}
	if in.Disabled != nil {
		product.Disabled = *in.Disabled
	}
	if in.IsSpecialProduct != nil {
		product.IsSpecialProduct = *in.IsSpecialProduct
	}
	if in.MeasureID != nil {
		if err := uc.measureExists(*in.MeasureID); err != nil {
			return nil, err
		}
		product.MeasureID = in.MeasureID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ToggleDisabled invierte el flag de deshabilitado (la alternativa al borrado).
func (uc *ProductUseCase) ToggleDisabled(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	product.Disabled = !product.Disabled
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (uc *ProductUseCase) measureExists(measureID int64) error {
	m, err := uc.measureRepo.GetByID(measureID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return nil
}

func validatePrice(price decimal.Decimal, isOpenPrice bool) error {
	if isOpenPrice {
		// El precio lo pone el vendedor en la venta; el del catálogo puede ser 0
		if price.IsNegative() {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if !price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         string(p.Category),
		CategoryDisplay:  p.Category.DisplayName(),
		Price:            p.Price,
		Disabled:         p.Disabled,
		IsSpecialProduct: p.IsSpecialProduct,
		IsAdminProduct:   p.IsAdminProduct,
		IsOpenPrice:      p.IsOpenPrice,
		MeasureID:        p.MeasureID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
