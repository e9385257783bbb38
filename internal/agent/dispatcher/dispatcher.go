package dispatcher

import (
	"context"
	"fmt"

	"storefront-assistant/internal/agent"
)

// Dispatch validates args against the tool registered for the intent, runs
// it, and returns the outcome as an envelope. It never returns an error:
// every failure mode is folded into a failure envelope so the caller always
// has something to render.
func (d *Dispatcher) Dispatch(ctx context.Context, intent agent.Intent, args agent.Args) agent.Envelope {
	if intent == agent.IntentUnrecognized {
		return agent.Failed(intent, agent.KindUnrecognizedIntent, "could not determine what you want to do")
	}

	tool, ok := d.registry.Get(intent)
	if !ok {
		d.l.Errorf(ctx, "dispatcher.Dispatch: no tool registered for intent %s", intent)
		return agent.Failed(intent, agent.KindInternal, "something went wrong, please try again")
	}

	if failure := validateArgs(tool.Fields(), args); failure != nil {
		return agent.Envelope{Intent: intent, Err: failure}
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		kind := classifyError(err)
		if kind == agent.KindInternal {
			d.l.Errorf(ctx, "dispatcher.Dispatch: tool %s failed: %v", intent, err)
			return agent.Failed(intent, kind, "something went wrong, please try again")
		}
		return agent.Failed(intent, kind, err.Error())
	}

	return agent.Success(intent, result)
}

// validateArgs checks the extracted bag against the tool's field table.
// Only declared fields are inspected; extraction errors on fields the tool
// does not consume are ignored.
func validateArgs(specs []agent.FieldSpec, args agent.Args) *agent.Failure {
	for _, spec := range specs {
		if msg, bad := args.Errors[spec.Name]; bad {
			return &agent.Failure{Kind: agent.KindInvalidArguments, Message: msg}
		}

		if !args.Has(spec.Name) {
			if spec.Required {
				return &agent.Failure{
					Kind:    agent.KindInvalidArguments,
					Message: fmt.Sprintf("missing required argument: %s", spec.Name),
				}
			}
			continue
		}

		if !typeMatches(spec.Type, args.Fields[spec.Name]) {
			return &agent.Failure{
				Kind:    agent.KindInvalidArguments,
				Message: fmt.Sprintf("argument %s has the wrong type", spec.Name),
			}
		}
	}
	return nil
}

func typeMatches(t agent.FieldType, v any) bool {
	switch t {
	case agent.FieldString:
		_, ok := v.(string)
		return ok
	case agent.FieldNumber:
		_, ok := v.(float64)
		return ok
	case agent.FieldInt:
		_, ok := v.(int64)
		return ok
	case agent.FieldBool:
		_, ok := v.(bool)
		return ok
	default:
		return false
	}
}
