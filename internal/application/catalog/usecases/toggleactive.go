package usecases

import (
	"context"
	"fmt"

	"quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/logger"
)

type ToggleActiveUseCase struct {
	repo   catalog.ServiceRepository
	logger logger.Interface
}

func NewToggleActiveUseCase(repo catalog.ServiceRepository, logger logger.Interface) *ToggleActiveUseCase {
	return &ToggleActiveUseCase{repo: repo, logger: logger}
}

func (uc *ToggleActiveUseCase) Execute(ctx context.Context, serviceID uint) (*dto.ServiceDTO, error) {
	svc, err := uc.repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	newState := svc.ToggleActive()
	if err := uc.repo.UpdateActive(ctx, serviceID, newState); err != nil {
		uc.logger.Errorw("failed to toggle service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to toggle service: %w", err)
	}

	uc.logger.Infow("service toggled", "service_id", serviceID, "is_active", newState)
	return dto.ToServiceDTO(svc), nil
}
