package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront-assistant/internal/ledger"
	"storefront-assistant/internal/ledger/repository"
	"storefront-assistant/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, input ledger.CreateInput) (model.Order, error) {
	if input.Quantity <= 0 {
		return model.Order{}, ledger.ErrInvalidQuantity
	}

	order, err := uc.repo.CreateOrder(ctx, repository.CreateOrderOptions{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	})
	if errors.Is(err, repository.ErrProductNotFound) {
		return model.Order{}, fmt.Errorf("product %d: %w", input.ProductID, ledger.ErrProductNotFound)
	}
	if errors.Is(err, repository.ErrProductUnavailable) {
		return model.Order{}, fmt.Errorf("product %d: %w", input.ProductID, ledger.ErrProductOutOfStock)
	}
	if err != nil {
		uc.l.Errorf(ctx, "ledger.Create: %v", err)
		return model.Order{}, err
	}

	uc.l.Infof(ctx, "order %d created: product %d x%d = %.2f", order.ID, order.ProductID, order.Quantity, order.TotalPrice)
	return order, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Order, error) {
	order, err := uc.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Order{}, fmt.Errorf("order %d: %w", id, ledger.ErrOrderNotFound)
	}
	if err != nil {
		uc.l.Errorf(ctx, "ledger.Get: %v", err)
		return model.Order{}, err
	}
	return order, nil
}

func (uc *implUseCase) List(ctx context.Context, input ledger.ListInput) ([]model.Order, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, ledger.ErrInvalidStatus
	}

	orders, err := uc.repo.List(ctx, repository.ListOrdersOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "ledger.List: %v", err)
		return nil, err
	}
	return orders, nil
}

// UpdateStatus allows any status to be set from any status; only Cancel
// carries a transition guard.
func (uc *implUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error) {
	if !status.Valid() {
		return model.Order{}, ledger.ErrInvalidStatus
	}

	order, err := uc.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Order{}, fmt.Errorf("order %d: %w", id, ledger.ErrOrderNotFound)
	}
	if err != nil {
		uc.l.Errorf(ctx, "ledger.UpdateStatus: %v", err)
		return model.Order{}, err
	}

	uc.l.Infof(ctx, "order %d status set to %s", order.ID, order.Status)
	return order, nil
}

// Cancel leaves the status guard to the repository, which checks and writes
// in one atomic unit.
func (uc *implUseCase) Cancel(ctx context.Context, id int64) (model.Order, error) {
	order, err := uc.repo.Cancel(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Order{}, fmt.Errorf("order %d: %w", id, ledger.ErrOrderNotFound)
	}
	if errors.Is(err, repository.ErrOrderCompleted) {
		return model.Order{}, fmt.Errorf("order %d: %w", id, ledger.ErrCancelCompleted)
	}
	if errors.Is(err, repository.ErrOrderCancelled) {
		return model.Order{}, fmt.Errorf("order %d: %w", id, ledger.ErrAlreadyCancelled)
	}
	if err != nil {
		uc.l.Errorf(ctx, "ledger.Cancel: %v", err)
		return model.Order{}, err
	}

	uc.l.Infof(ctx, "order %d cancelled", order.ID)
	return order, nil
}
