package usecase

import (
	"context"
	"math"

	"storefront-assistant/internal/catalog"
)

// Statistics reports catalog-wide aggregates. An empty catalog yields zeros,
// never a division error.
func (uc *implUseCase) Statistics(ctx context.Context) (catalog.StatisticsOutput, error) {
	agg, err := uc.repo.Aggregate(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "catalog.Statistics: %v", err)
		return catalog.StatisticsOutput{}, err
	}

	return catalog.StatisticsOutput{
		TotalCount:   agg.TotalCount,
		AveragePrice: math.Round(agg.AveragePrice*100) / 100,
		Categories:   agg.Categories,
		InStockCount: agg.InStockCount,
	}, nil
}
