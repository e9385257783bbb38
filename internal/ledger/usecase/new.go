package usecase

import (
	"storefront-assistant/internal/ledger/repository"
	pkgLog "storefront-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.OrderRepository
}

// New creates a new ledger UseCase instance.
func New(l pkgLog.Logger, repo repository.OrderRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
