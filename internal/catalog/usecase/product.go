package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-assistant/internal/catalog"
	"storefront-assistant/internal/catalog/repository"
	"storefront-assistant/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, input catalog.ListInput) ([]model.Product, error) {
	products, err := uc.repo.List(ctx, repository.ListProductsOptions{Category: input.Category})
	if err != nil {
		uc.l.Errorf(ctx, "catalog.List: %v", err)
		return nil, err
	}
	return products, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Product, error) {
	product, err := uc.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Product{}, fmt.Errorf("product %d: %w", id, catalog.ErrProductNotFound)
	}
	if err != nil {
		uc.l.Errorf(ctx, "catalog.Get: %v", err)
		return model.Product{}, err
	}
	return product, nil
}

func (uc *implUseCase) Add(ctx context.Context, input catalog.AddInput) (model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Product{}, catalog.ErrEmptyName
	}
	if input.Price <= 0 {
		return model.Product{}, catalog.ErrInvalidPrice
	}

	product, err := uc.repo.Create(ctx, repository.CreateProductOptions{
		Name:     name,
		Price:    input.Price,
		Category: strings.TrimSpace(input.Category),
		InStock:  input.InStock,
	})
	if err != nil {
		uc.l.Errorf(ctx, "catalog.Add: %v", err)
		return model.Product{}, err
	}

	uc.l.Infof(ctx, "product %d (%s) created", product.ID, product.Name)
	return product, nil
}

func (uc *implUseCase) Update(ctx context.Context, input catalog.UpdateInput) (model.Product, error) {
	if input.Name == nil && input.Price == nil && input.Category == nil && input.InStock == nil {
		return model.Product{}, catalog.ErrNoUpdateFields
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return model.Product{}, catalog.ErrEmptyName
	}
	if input.Price != nil && *input.Price <= 0 {
		return model.Product{}, catalog.ErrInvalidPrice
	}

	product, err := uc.repo.Update(ctx, repository.UpdateProductOptions{
		ID:       input.ID,
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		InStock:  input.InStock,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Product{}, fmt.Errorf("product %d: %w", input.ID, catalog.ErrProductNotFound)
	}
	if err != nil {
		uc.l.Errorf(ctx, "catalog.Update: %v", err)
		return model.Product{}, err
	}
	return product, nil
}

// Delete removes the product and returns its last state. Existing orders keep
// their frozen totals and product reference.
func (uc *implUseCase) Delete(ctx context.Context, id int64) (model.Product, error) {
	product, err := uc.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Product{}, fmt.Errorf("product %d: %w", id, catalog.ErrProductNotFound)
	}
	if err != nil {
		uc.l.Errorf(ctx, "catalog.Delete get: %v", err)
		return model.Product{}, err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Product{}, fmt.Errorf("product %d: %w", id, catalog.ErrProductNotFound)
		}
		uc.l.Errorf(ctx, "catalog.Delete: %v", err)
		return model.Product{}, err
	}

	uc.l.Infof(ctx, "product %d (%s) deleted", product.ID, product.Name)
	return product, nil
}

func (uc *implUseCase) Search(ctx context.Context, term string) ([]model.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, catalog.ErrEmptySearchTerm
	}

	products, err := uc.repo.SearchByName(ctx, term)
	if err != nil {
		uc.l.Errorf(ctx, "catalog.Search: %v", err)
		return nil, err
	}
	return products, nil
}
