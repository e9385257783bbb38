package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"storefront-assistant/internal/agent"
	"storefront-assistant/internal/agent/classifier"
	assistantHTTP "storefront-assistant/internal/agent/delivery/http"
	"storefront-assistant/internal/agent/dispatcher"
	"storefront-assistant/internal/agent/formatter"
	"storefront-assistant/internal/agent/orchestrator"
	"storefront-assistant/internal/agent/tools"
	catalogSqlite "storefront-assistant/internal/catalog/repository/sqlite"
	catalogUC "storefront-assistant/internal/catalog/usecase"
	ledgerSqlite "storefront-assistant/internal/ledger/repository/sqlite"
	ledgerUC "storefront-assistant/internal/ledger/usecase"
	"storefront-assistant/internal/middleware"
)

// setupAssistantDomain wires the full query pipeline and registers its
// routes: repositories, usecases, the tool registry, then
// classify/dispatch/format behind the orchestrator.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// 1. Repositories
	productRepo := catalogSqlite.New(srv.db, srv.l)
	orderRepo := ledgerSqlite.New(srv.db, srv.l)

	// 2. UseCases
	catalog := catalogUC.New(srv.l, productRepo)
	ledger := ledgerUC.New(srv.l, orderRepo)

	// 3. Tool registry and pipeline
	registry := agent.NewToolRegistry()
	tools.Register(registry, catalog, ledger)

	cacheSize := srv.classifierCacheSize
	if cacheSize <= 0 {
		cacheSize = classifier.DefaultCacheSize
	}

	orc := orchestrator.New(
		srv.l,
		classifier.New(cacheSize),
		dispatcher.New(srv.l, registry),
		formatter.New(),
	)

	// 4. HTTP handler and routes: registers /api/v1/assistant/query
	h := assistantHTTP.New(srv.l, orc)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered with %d tools", len(registry.List()))
}
