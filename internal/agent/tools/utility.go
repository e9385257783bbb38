package tools

import (
	"context"

	"storefront-assistant/internal/agent"
	"storefront-assistant/pkg/calc"
)

// Calculation pairs an evaluated expression with its value for rendering.
type Calculation struct {
	Expression string
	Value      float64
}

type calculate struct{}

func NewCalculate() agent.Tool {
	return &calculate{}
}

func (t *calculate) Intent() agent.Intent { return agent.IntentCalculate }
func (t *calculate) Description() string  { return "evaluate an arithmetic expression" }

func (t *calculate) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "expression", Type: agent.FieldString, Required: true},
	}
}

func (t *calculate) Execute(_ context.Context, args agent.Args) (any, error) {
	expr, _ := args.String("expression")
	value, err := calc.Evaluate(expr)
	if err != nil {
		return nil, err
	}
	return Calculation{Expression: expr, Value: value}, nil
}

type applyDiscount struct{}

func NewApplyDiscount() agent.Tool {
	return &applyDiscount{}
}

func (t *applyDiscount) Intent() agent.Intent { return agent.IntentApplyDiscount }
func (t *applyDiscount) Description() string  { return "price a percentage discount" }

func (t *applyDiscount) Fields() []agent.FieldSpec {
	return []agent.FieldSpec{
		{Name: "percent", Type: agent.FieldNumber, Required: true},
		{Name: "price", Type: agent.FieldNumber, Required: true},
	}
}

func (t *applyDiscount) Execute(_ context.Context, args agent.Args) (any, error) {
	percent, _ := args.Number("percent")
	price, _ := args.Number("price")
	return calc.Discount(percent, price), nil
}
