package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront-assistant/internal/catalog"
	"storefront-assistant/internal/catalog/repository"
	"storefront-assistant/internal/model"
	pkgLog "storefront-assistant/pkg/log"
)

type mockProductRepo struct {
	createFn  func(ctx context.Context, opt repository.CreateProductOptions) (model.Product, error)
	getFn     func(ctx context.Context, id int64) (model.Product, error)
	listFn    func(ctx context.Context, opt repository.ListProductsOptions) ([]model.Product, error)
	updateFn  func(ctx context.Context, opt repository.UpdateProductOptions) (model.Product, error)
	deleteFn  func(ctx context.Context, id int64) error
	searchFn  func(ctx context.Context, term string) ([]model.Product, error)
	aggregate func(ctx context.Context) (repository.ProductAggregate, error)
}

func (m *mockProductRepo) Create(ctx context.Context, opt repository.CreateProductOptions) (model.Product, error) {
	return m.createFn(ctx, opt)
}
func (m *mockProductRepo) Get(ctx context.Context, id int64) (model.Product, error) {
	return m.getFn(ctx, id)
}
func (m *mockProductRepo) List(ctx context.Context, opt repository.ListProductsOptions) ([]model.Product, error) {
	return m.listFn(ctx, opt)
}
func (m *mockProductRepo) Update(ctx context.Context, opt repository.UpdateProductOptions) (model.Product, error) {
	return m.updateFn(ctx, opt)
}
func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}
func (m *mockProductRepo) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	return m.searchFn(ctx, term)
}
func (m *mockProductRepo) Aggregate(ctx context.Context) (repository.ProductAggregate, error) {
	return m.aggregate(ctx)
}

func TestAdd(t *testing.T) {
	t.Run("valid input trims name", func(t *testing.T) {
		repo := &mockProductRepo{
			createFn: func(_ context.Context, opt repository.CreateProductOptions) (model.Product, error) {
				if opt.Name != "Webcam" {
					t.Errorf("name = %q, want trimmed", opt.Name)
				}
				return model.Product{ID: 1, Name: opt.Name, Price: opt.Price}, nil
			},
		}
		uc := New(pkgLog.NewNop(), repo)

		got, err := uc.Add(context.Background(), catalog.AddInput{Name: "  Webcam  ", Price: 89.99, Category: "Electronics", InStock: true})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if got.ID != 1 {
			t.Errorf("id = %d", got.ID)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockProductRepo{})
		_, err := uc.Add(context.Background(), catalog.AddInput{Name: "   ", Price: 10})
		if !errors.Is(err, catalog.ErrEmptyName) {
			t.Errorf("err = %v, want ErrEmptyName", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockProductRepo{})
		for _, price := range []float64{0, -5} {
			_, err := uc.Add(context.Background(), catalog.AddInput{Name: "Webcam", Price: price})
			if !errors.Is(err, catalog.ErrInvalidPrice) {
				t.Errorf("price %v: err = %v, want ErrInvalidPrice", price, err)
			}
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("missing product maps to domain error", func(t *testing.T) {
		repo := &mockProductRepo{
			getFn: func(_ context.Context, _ int64) (model.Product, error) {
				return model.Product{}, repository.ErrNotFound
			},
		}
		uc := New(pkgLog.NewNop(), repo)

		_, err := uc.Get(context.Background(), 99)
		if !errors.Is(err, catalog.ErrProductNotFound) {
			t.Errorf("err = %v, want ErrProductNotFound", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockProductRepo{})
		_, err := uc.Update(context.Background(), catalog.UpdateInput{ID: 1})
		if !errors.Is(err, catalog.ErrNoUpdateFields) {
			t.Errorf("err = %v, want ErrNoUpdateFields", err)
		}
	})

	t.Run("invalid price rejected before repository", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockProductRepo{
			updateFn: func(_ context.Context, _ repository.UpdateProductOptions) (model.Product, error) {
				t.Fatal("repository must not be hit")
				return model.Product{}, nil
			},
		})
		price := -1.0
		_, err := uc.Update(context.Background(), catalog.UpdateInput{ID: 1, Price: &price})
		if !errors.Is(err, catalog.ErrInvalidPrice) {
			t.Errorf("err = %v, want ErrInvalidPrice", err)
		}
	})

	t.Run("missing product maps to domain error", func(t *testing.T) {
		repo := &mockProductRepo{
			updateFn: func(_ context.Context, _ repository.UpdateProductOptions) (model.Product, error) {
				return model.Product{}, repository.ErrNotFound
			},
		}
		uc := New(pkgLog.NewNop(), repo)

		price := 10.0
		_, err := uc.Update(context.Background(), catalog.UpdateInput{ID: 99, Price: &price})
		if !errors.Is(err, catalog.ErrProductNotFound) {
			t.Errorf("err = %v, want ErrProductNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("returns the deleted record", func(t *testing.T) {
		repo := &mockProductRepo{
			getFn: func(_ context.Context, id int64) (model.Product, error) {
				return model.Product{ID: id, Name: "4K Monitor"}, nil
			},
			deleteFn: func(_ context.Context, _ int64) error { return nil },
		}
		uc := New(pkgLog.NewNop(), repo)

		got, err := uc.Delete(context.Background(), 4)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if got.Name != "4K Monitor" {
			t.Errorf("name = %q", got.Name)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		repo := &mockProductRepo{
			getFn: func(_ context.Context, _ int64) (model.Product, error) {
				return model.Product{}, repository.ErrNotFound
			},
		}
		uc := New(pkgLog.NewNop(), repo)

		_, err := uc.Delete(context.Background(), 99)
		if !errors.Is(err, catalog.ErrProductNotFound) {
			t.Errorf("err = %v, want ErrProductNotFound", err)
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("blank term", func(t *testing.T) {
		uc := New(pkgLog.NewNop(), &mockProductRepo{})
		_, err := uc.Search(context.Background(), "   ")
		if !errors.Is(err, catalog.ErrEmptySearchTerm) {
			t.Errorf("err = %v, want ErrEmptySearchTerm", err)
		}
	})

	t.Run("term is trimmed", func(t *testing.T) {
		repo := &mockProductRepo{
			searchFn: func(_ context.Context, term string) ([]model.Product, error) {
				if term != "laptop" {
					t.Errorf("term = %q", term)
				}
				return nil, nil
			},
		}
		uc := New(pkgLog.NewNop(), repo)
		if _, err := uc.Search(context.Background(), " laptop "); err != nil {
			t.Fatalf("Search: %v", err)
		}
	})
}

func TestStatistics(t *testing.T) {
	repo := &mockProductRepo{
		aggregate: func(_ context.Context) (repository.ProductAggregate, error) {
			return repository.ProductAggregate{
				TotalCount:   3,
				AveragePrice: 123.456789,
				Categories:   []string{"Electronics"},
				InStockCount: 2,
			}, nil
		},
	}
	uc := New(pkgLog.NewNop(), repo)

	got, err := uc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if got.AveragePrice != 123.46 {
		t.Errorf("average = %v, want rounded to 123.46", got.AveragePrice)
	}
	if got.TotalCount != 3 || got.InStockCount != 2 {
		t.Errorf("counts = %+v", got)
	}
}
