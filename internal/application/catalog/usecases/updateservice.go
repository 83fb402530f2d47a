package usecases

import (
	"context"
	"fmt"

	"quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type UpdateServiceCommand struct {
	ServiceID uint
	Input     dto.ServiceInput
}

type UpdateServiceUseCase struct {
	repo   catalog.ServiceRepository
	logger logger.Interface
}

func NewUpdateServiceUseCase(repo catalog.ServiceRepository, logger logger.Interface) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{repo: repo, logger: logger}
}

// Execute replaces a service and its whole nested children set. Purchases
// made before the update keep their snapshots untouched.
func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*dto.ServiceDTO, error) {
	svc, err := uc.repo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.NewNotFoundError("service not found")
	}

	if err := dto.PopulateService(svc, cmd.Input); err != nil {
		uc.logger.Errorw("invalid service input", "error", err, "service_id", cmd.ServiceID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, svc); err != nil {
		uc.logger.Errorw("failed to update service", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	uc.logger.Infow("service updated", "service_id", cmd.ServiceID, "name", svc.Name())
	return dto.ToServiceDTO(svc), nil
}
