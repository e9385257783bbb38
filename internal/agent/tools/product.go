package tools

import (
	"context"

	"storefront-assistant/internal/agent"
	"storefront-assistant/internal/catalog"
)

type listProducts struct {
	uc catalog.UseCase
}

func NewListProducts(uc catalog.UseCase) agent.Tool {
	return &listProducts{uc: uc}
}

func (t *listProducts) Intent() agent.Intent { return agent.IntentListProducts }
func (t *listProducts) Description() string  { return "list products, optionally by category" }

func (t *listProducts) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "category", Type: agent.FieldString},
	}
}

func (t *listProducts) Execute(ctx context.Context, args agent.Args) (any, error) {
	category, _ := args.String("category")
	return t.uc.List(ctx, catalog.ListInput{Category: category})
}

type getProduct struct {
	uc catalog.UseCase
}

func NewGetProduct(uc catalog.UseCase) agent.Tool {
	return &getProduct{uc: uc}
}

func (t *getProduct) Intent() agent.Intent { return agent.IntentGetProduct }
func (t *getProduct) Description() string  { return "fetch one product by id" }

func (t *getProduct) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "product_id", Type: agent.FieldInt, Required: true},
	}
}

func (t *getProduct) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("product_id")
	return t.uc.Get(ctx, id)
}

type addProduct struct {
	uc catalog.UseCase
}

func NewAddProduct(uc catalog.UseCase) agent.Tool {
	return &addProduct{uc: uc}
}

func (t *addProduct) Intent() agent.Intent { return agent.IntentAddProduct }
func (t *addProduct) Description() string  { return "create a product" }

func (t *addProduct) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "name", Type: agent.FieldString, Required: true},
		{Name: "price", Type: agent.FieldNumber, Required: true},
		{Name: "category", Type: agent.FieldString, Required: true},
		{Name: "in_stock", Type: agent.FieldBool},
	}
}

func (t *addProduct) Execute(ctx context.Context, args agent.Args) (any, error) {
	name, _ := args.String("name")
	price, _ := args.Number("price")
	category, _ := args.String("category")

	// Products are in stock unless the query said otherwise.
	inStock := true
	if v, ok := args.Bool("in_stock"); ok {
		inStock = v
	}

	return t.uc.Add(ctx, catalog.AddInput{
		Name:     name,
		Price:    price,
		Category: category,
		InStock:  inStock,
	})
}

type updateProduct struct {
	uc catalog.UseCase
}

func NewUpdateProduct(uc catalog.UseCase) agent.Tool {
	return &updateProduct{uc: uc}
}

func (t *updateProduct) Intent() agent.Intent { return agent.IntentUpdateProduct }
func (t *updateProduct) Description() string  { return "partially update a product" }

func (t *updateProduct) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "product_id", Type: agent.FieldInt, Required: true},
		{Name: "name", Type: agent.FieldString},
		{Name: "price", Type: agent.FieldNumber},
		{Name: "category", Type: agent.FieldString},
		{Name: "in_stock", Type: agent.FieldBool},
	}
}

func (t *updateProduct) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("product_id")

	input := catalog.UpdateInput{ID: id}
	if v, ok := args.String("name"); ok {
		input.Name = &v
	}
	if v, ok := args.Number("price"); ok {
		input.Price = &v
	}
	if v, ok := args.String("category"); ok {
		input.Category = &v
	}
	if v, ok := args.Bool("in_stock"); ok {
		input.InStock = &v
	}

	return t.uc.Update(ctx, input)
}

type deleteProduct struct {
	uc catalog.UseCase
}

func NewDeleteProduct(uc catalog.UseCase) agent.Tool {
	return &deleteProduct{uc: uc}
}

func (t *deleteProduct) Intent() agent.Intent { return agent.IntentDeleteProduct }
func (t *deleteProduct) Description() string  { return "delete a product by id" }

func (t *deleteProduct) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "product_id", Type: agent.FieldInt, Required: true},
	}
}

func (t *deleteProduct) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("product_id")
	return t.uc.Delete(ctx, id)
}

type searchProducts struct {
	uc catalog.UseCase
}

func NewSearchProducts(uc catalog.UseCase) agent.Tool {
	return &searchProducts{uc: uc}
}

func (t *searchProducts) Intent() agent.Intent { return agent.IntentSearchProducts }
func (t *searchProducts) Description() string  { return "search products by name" }

func (t *searchProducts) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "term", Type: agent.FieldString, Required: true},
	}
}

func (t *searchProducts) Execute(ctx context.Context, args agent.Args) (any, error) {
	term, _ := args.String("term")
	return t.uc.Search(ctx, term)
}

type productStatistics struct {
	uc catalog.UseCase
}

func NewProductStatistics(uc catalog.UseCase) agent.Tool {
	return &productStatistics{uc: uc}
}

func (t *productStatistics) Intent() agent.Intent { return agent.IntentGetProductStatistics }
func (t *productStatistics) Description() string  { return "aggregate catalog statistics" }

func (t *productStatistics) Fields() []agent.FieldSpec { return nil }

func (t *productStatistics) Execute(ctx context.Context, _ agent.Args) (any, error) {
	return t.uc.Statistics(ctx)
}
