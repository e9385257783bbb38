package http

import (
	"context"

	"storefront-assistant/internal/agent/orchestrator"
	"storefront-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Query(c interface{})
}

// UseCase is the query pipeline the handler delegates to.
type UseCase interface {
	ProcessQuery(ctx context.Context, query string) orchestrator.Output
}

type handler struct {
	l  log.Logger
	uc UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
