package usecases

import (
	"context"
	"fmt"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/logger"
)

type DeleteServiceUseCase struct {
	repo   catalog.ServiceRepository
	logger logger.Interface
}

func NewDeleteServiceUseCase(repo catalog.ServiceRepository, logger logger.Interface) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{repo: repo, logger: logger}
}

// Execute deletes a service with its features, pricing options and
// questions. Purchase snapshots are not touched; quotes built from the
// service remain readable after it is gone.
func (uc *DeleteServiceUseCase) Execute(ctx context.Context, serviceID uint) error {
	if _, err := uc.repo.GetByID(ctx, serviceID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, serviceID); err != nil {
		uc.logger.Errorw("failed to delete service", "error", err, "service_id", serviceID)
		return fmt.Errorf("failed to delete service: %w", err)
	}

	uc.logger.Infow("service deleted", "service_id", serviceID)
	return nil
}
