package orchestrator

import (
	"context"

	"storefront-assistant/internal/agent"
)

// Output is the rendered outcome of one query.
type Output struct {
	Intent   agent.Intent
	Response string
	Success  bool
}

// ProcessQuery takes free text through classification, dispatch and
// formatting. It always produces a renderable output; failures surface as
// Success=false with user-facing text, never as an error.
func (o *Orchestrator) ProcessQuery(ctx context.Context, query string) Output {
	intent, args := o.classifier.Classify(query)
	o.l.Debugf(ctx, "orchestrator.ProcessQuery: query %q classified as %s", query, intent)

	env := o.dispatcher.Dispatch(ctx, intent, args)
	if !env.OK() {
		o.l.Infof(ctx, "orchestrator.ProcessQuery: intent %s failed with kind %s", intent, env.Err.Kind)
	}

	return Output{
		Intent:   intent,
		Response: o.formatter.Format(env),
		Success:  env.OK(),
	}
}
