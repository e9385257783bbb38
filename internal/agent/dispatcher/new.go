// Package dispatcher validates extracted arguments against the matched
// tool's field table, runs the tool, and folds every outcome into a tagged
// envelope. Domain errors are translated to error kinds here so that no
// caller above this point needs to know sentinel errors.
package dispatcher

import (
	"storefront-assistant/internal/agent"
	pkgLog "storefront-assistant/pkg/log"
)

type Dispatcher struct {
	l        pkgLog.Logger
	registry *agent.ToolRegistry
}

func New(l pkgLog.Logger, registry *agent.ToolRegistry) *Dispatcher {
	return &Dispatcher{
		l:        l,
		registry: registry,
	}
}
