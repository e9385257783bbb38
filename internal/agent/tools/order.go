package tools

import (
	"context"

	"storefront-assistant/internal/agent"
	"storefront-assistant/internal/ledger"
	"storefront-assistant/internal/model"
)

type createOrder struct {
	uc ledger.UseCase
}

func NewCreateOrder(uc ledger.UseCase) agent.Tool {
	return &createOrder{uc: uc}
}

func (t *createOrder) Intent() agent.Intent { return agent.IntentCreateOrder }
func (t *createOrder) Description() string  { return "place an order for a product" }

func (t *createOrder) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "product_id", Type: agent.FieldInt, Required: true},
		{Name: "quantity", Type: agent.FieldInt},
	}
}

func (t *createOrder) Execute(ctx context.Context, args agent.Args) (any, error) {
	productID, _ := args.Int("product_id")

	quantity := int64(1)
	if v, ok := args.Int("quantity"); ok {
		quantity = v
	}

	return t.uc.Create(ctx, ledger.CreateInput{
		ProductID: productID,
		Quantity:  quantity,
	})
}

type getOrder struct {
	uc ledger.UseCase
}

func NewGetOrder(uc ledger.UseCase) agent.Tool {
	return &getOrder{uc: uc}
}

func (t *getOrder) Intent() agent.Intent { return agent.IntentGetOrder }
func (t *getOrder) Description() string  { return "fetch one order by id" }

func (t *getOrder) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "order_id", Type: agent.FieldInt, Required: true},
	}
}

func (t *getOrder) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("order_id")
	return t.uc.Get(ctx, id)
}

type listOrders struct {
	uc ledger.UseCase
}

func NewListOrders(uc ledger.UseCase) agent.Tool {
	return &listOrders{uc: uc}
}

func (t *listOrders) Intent() agent.Intent { return agent.IntentListOrders }
func (t *listOrders) Description() string  { return "list orders, optionally by status" }

func (t *listOrders) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "status", Type: agent.FieldString},
	}
}

func (t *listOrders) Execute(ctx context.Context, args agent.Args) (any, error) {
	status, _ := args.String("status")
	return t.uc.List(ctx, ledger.ListInput{Status: model.OrderStatus(status)})
}

type updateOrderStatus struct {
	uc ledger.UseCase
}

func NewUpdateOrderStatus(uc ledger.UseCase) agent.Tool {
	return &updateOrderStatus{uc: uc}
}

func (t *updateOrderStatus) Intent() agent.Intent { return agent.IntentUpdateOrderStatus }
func (t *updateOrderStatus) Description() string  { return "set an order's status" }

func (t *updateOrderStatus) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "order_id", Type: agent.FieldInt, Required: true},
		{Name: "status", Type: agent.FieldString, Required: true},
	}
}

func (t *updateOrderStatus) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("order_id")
	status, _ := args.String("status")
	return t.uc.UpdateStatus(ctx, id, model.OrderStatus(status))
}

type cancelOrder struct {
	uc ledger.UseCase
}

func NewCancelOrder(uc ledger.UseCase) agent.Tool {
	return &cancelOrder{uc: uc}
}

func (t *cancelOrder) Intent() agent.Intent { return agent.IntentCancelOrder }
func (t *cancelOrder) Description() string  { return "cancel an order" }

func (t *cancelOrder) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "order_id", Type: agent.FieldInt, Required: true},
	}
}

func (t *cancelOrder) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("order_id")
	return t.uc.Cancel(ctx, id)
}

type orderStatistics struct {
	uc ledger.UseCase
}

func NewOrderStatistics(uc ledger.UseCase) agent.Tool {
	return &orderStatistics{uc: uc}
}

func (t *orderStatistics) Intent() agent.Intent { return agent.IntentGetOrderStatistics }
func (t *orderStatistics) Description() string  { return "aggregate order statistics" }

func (t *orderStatistics) Fields() []agent.FieldSpec { return nil }

func (t *orderStatistics) Execute(ctx context.Context, _ agent.Args) (any, error) {
	return t.uc.Statistics(ctx)
}
