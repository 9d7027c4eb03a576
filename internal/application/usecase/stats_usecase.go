package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// StatsUseCase agregados de solo lectura sobre el ledger para la pantalla de
// administración.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Overview ventas por categoría y productos más vendidos en un rango de fechas.
func (uc *StatsUseCase) Overview(ctx context.Context, startDate, endDate time.Time, topLimit int) (*dto.StatsResponse, error) {
	if topLimit <= 0 {
		topLimit = 10
	}
	byCategory, err := uc.repo.SalesByCategory(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.repo.TopProducts(ctx, startDate, endDate, topLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{}
	for _, row := range byCategory {
		resp.ByCategory = append(resp.ByCategory, dto.CategorySalesResponse{
			Category:        string(row.Category),
			CategoryDisplay: row.Category.DisplayName(),
			UnitsSold:       row.UnitsSold,
			Revenue:         row.Revenue,
		})
	}
	for _, row := range topProducts {
		resp.TopProducts = append(resp.TopProducts, dto.ProductSalesResponse{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Category:    string(row.Category),
			UnitsSold:   row.UnitsSold,
			Revenue:     row.Revenue,
		})
	}
	return resp, nil
}
