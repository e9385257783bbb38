package usecase

import (
	"storefront-assistant/internal/catalog/repository"
	pkgLog "storefront-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ProductRepository
}

// New creates a new catalog UseCase instance.
func New(l pkgLog.Logger, repo repository.ProductRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
