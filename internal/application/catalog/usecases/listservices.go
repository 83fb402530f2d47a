package usecases

import (
	"context"
	"fmt"

	"quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/logger"
)

type ListServicesQuery struct {
	// ActiveOnly restricts the listing to services currently offered to
	// customers; the quote frontend uses it, the catalog editor does not.
	ActiveOnly bool
}

type ListServicesUseCase struct {
	repo   catalog.ServiceRepository
	logger logger.Interface
}

func NewListServicesUseCase(repo catalog.ServiceRepository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{repo: repo, logger: logger}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, q ListServicesQuery) ([]*dto.ServiceDTO, error) {
	var (
		services []*catalog.Service
		err      error
	)
	if q.ActiveOnly {
		services, err = uc.repo.ListActive(ctx)
	} else {
		services, err = uc.repo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err, "active_only", q.ActiveOnly)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return dto.ToServiceDTOList(services), nil
}
