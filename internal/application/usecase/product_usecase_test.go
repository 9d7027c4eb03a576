package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

func newProductUC() (*usecase.ProductUseCase, *memProductRepo, *memMeasurementRepo) {
	products := newMemProductRepo()
	measurements := newMemMeasurementRepo()
	return usecase.NewProductUseCase(products, measurements), products, measurements
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas y validación de precio
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_PrecioDebeSerPositivo(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Cerveza", Category: "BEER", Price: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Cerveza", Category: "BEER", Price: decimal.NewFromFloat(4.50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Beer", out.CategoryDisplay)
}

// Precio abierto: el catálogo puede llevar 0, pero nunca negativo.
func TestProductCreate_PrecioAbiertoPermiteCero(t *testing.T) {
	uc, _, _ := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Venta libre", Category: "OTHER", Price: decimal.Zero, IsOpenPrice: true,
	})
	require.NoError(t, err)
	assert.True(t, out.IsOpenPrice)

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Mal", Category: "OTHER", Price: decimal.NewFromInt(-1), IsOpenPrice: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CategoriaDesconocida(t *testing.T) {
	uc, _, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "X", Category: "MYSTERY", Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La medida referenciada debe existir.
func TestProductCreate_MedidaInexistente(t *testing.T) {
	uc, _, measurements := newProductUC()

	missing := int64(999)
	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Cerveza", Category: "BEER", Price: decimal.NewFromInt(5), MeasureID: &missing,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m := &entity.Measurement{Unit: "cl", Amount: decimal.NewFromInt(33)}
	require.NoError(t, measurements.Create(m))
	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Cerveza", Category: "BEER", Price: decimal.NewFromInt(5), MeasureID: &m.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.MeasureID)
	assert.Equal(t, m.ID, *out.MeasureID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

// El catálogo de compra excluye deshabilitados, especiales y administrativos;
// el listado admin con include_disabled lo muestra todo.
func TestProductList_ShopExcluyeNoVendibles(t *testing.T) {
	uc, products, _ := newProductUC()

	require.NoError(t, products.Create(&entity.Product{Name: "Normal", Category: entity.CategoryBeer, Price: decimal.NewFromInt(5)}))
	require.NoError(t, products.Create(&entity.Product{Name: "Apagado", Category: entity.CategoryBeer, Price: decimal.NewFromInt(5), Disabled: true}))
	require.NoError(t, products.Create(&entity.Product{Name: "Depósito", Category: entity.CategoryOther, Price: decimal.NewFromInt(1), IsAdminProduct: true}))
	require.NoError(t, products.Create(&entity.Product{Name: "Destacado", Category: entity.CategoryBeer, Price: decimal.NewFromInt(6), IsSpecialProduct: true}))

	shop, err := uc.ListShop(dto.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, shop.Data, 1)
	assert.Equal(t, "Normal", shop.Data[0].Name)

	all, err := uc.List(dto.ProductFilters{IncludeDisabled: true})
	require.NoError(t, err)
	assert.Len(t, all.Data, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func TestProductToggleDisabled_Invierte(t *testing.T) {
	uc, products, _ := newProductUC()
	require.NoError(t, products.Create(&entity.Product{Name: "Cerveza", Category: entity.CategoryBeer, Price: decimal.NewFromInt(5)}))

	out, err := uc.ToggleDisabled(1)
	require.NoError(t, err)
	assert.True(t, out.Disabled)

	out, err = uc.ToggleDisabled(1)
	require.NoError(t, err)
	assert.False(t, out.Disabled)
}

func TestProductUpdate_CamposNilNoSeTocan(t *testing.T) {
	uc, products, _ := newProductUC()
	require.NoError(t, products.Create(&entity.Product{Name: "Cerveza", Category: entity.CategoryBeer, Price: decimal.NewFromInt(5)}))

	newPrice := decimal.NewFromFloat(6.50)
	out, err := uc.Update(1, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "Cerveza", out.Name, "el nombre no debe cambiar")
	assert.True(t, out.Price.Equal(newPrice))
}
