package usecase

import (
	"context"
	"math"

	"storefront-assistant/internal/ledger"
)

// Statistics reports order totals per status and revenue over completed
// orders only.
func (uc *implUseCase) Statistics(ctx context.Context) (ledger.StatisticsOutput, error) {
	agg, err := uc.repo.Aggregate(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ledger.Statistics: %v", err)
		return ledger.StatisticsOutput{}, err
	}

	return ledger.StatisticsOutput{
		TotalOrders:     agg.TotalOrders,
		PendingOrders:   agg.PendingOrders,
		CompletedOrders: agg.CompletedOrders,
		CancelledOrders: agg.CancelledOrders,
		TotalRevenue:    math.Round(agg.TotalRevenue*100) / 100,
	}, nil
}
