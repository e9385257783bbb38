// Package orchestrator runs the classify, dispatch, format pipeline for one
// query. It is stateless per query; all persistence sits behind the tools.
package orchestrator

import (
	"storefront-assistant/internal/agent/classifier"
	"storefront-assistant/internal/agent/dispatcher"
	"storefront-assistant/internal/agent/formatter"
	pkgLog "storefront-assistant/pkg/log"
)

type Orchestrator struct {
	l          pkgLog.Logger
	classifier *classifier.Classifier
	dispatcher *dispatcher.Dispatcher
	formatter  *formatter.Formatter
}

func New(l pkgLog.Logger, c *classifier.Classifier, d *dispatcher.Dispatcher, f *formatter.Formatter) *Orchestrator {
	return &Orchestrator{
		l:          l,
		classifier: c,
		dispatcher: d,
		formatter:  f,
	}
}
