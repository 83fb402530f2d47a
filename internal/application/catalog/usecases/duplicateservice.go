package usecases

import (
	"context"
	"fmt"

	"quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/logger"
)

type DuplicateServiceUseCase struct {
	repo   catalog.ServiceRepository
	logger logger.Interface
}

func NewDuplicateServiceUseCase(repo catalog.ServiceRepository, logger logger.Interface) *DuplicateServiceUseCase {
	return &DuplicateServiceUseCase{repo: repo, logger: logger}
}

// Execute deep-copies a service under a " (Copy)" name and persists the copy
// as a new aggregate.
func (uc *DuplicateServiceUseCase) Execute(ctx context.Context, serviceID uint) (*dto.ServiceDTO, error) {
	svc, err := uc.repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	copySvc, err := svc.Duplicate()
	if err != nil {
		uc.logger.Errorw("failed to duplicate service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to duplicate service: %w", err)
	}

	if err := uc.repo.Create(ctx, copySvc); err != nil {
		uc.logger.Errorw("failed to persist duplicated service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to persist duplicated service: %w", err)
	}

	uc.logger.Infow("service duplicated", "service_id", serviceID, "copy_id", copySvc.ID())
	return dto.ToServiceDTO(copySvc), nil
}
