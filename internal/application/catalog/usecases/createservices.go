package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

// CreateServicesCommand accepts one or many services in a single call; the
// catalog editor saves its whole working set at once and may attach a new
// global minimum price to the same submission.
type CreateServicesCommand struct {
	Services     []dto.ServiceInput
	MinimumPrice *decimal.Decimal
}

type CreateServicesUseCase struct {
	repo        catalog.ServiceRepository
	txManager   *db.TransactionManager
	priceWriter MinimumPriceWriter
	logger      logger.Interface
}

func NewCreateServicesUseCase(
	repo catalog.ServiceRepository,
	txManager *db.TransactionManager,
	priceWriter MinimumPriceWriter,
	logger logger.Interface,
) *CreateServicesUseCase {
	return &CreateServicesUseCase{
		repo:        repo,
		txManager:   txManager,
		priceWriter: priceWriter,
		logger:      logger,
	}
}

func (uc *CreateServicesUseCase) Execute(ctx context.Context, cmd CreateServicesCommand) ([]*dto.ServiceDTO, error) {
	if len(cmd.Services) == 0 {
		return nil, errors.NewValidationError("at least one service is required")
	}

	services := make([]*catalog.Service, 0, len(cmd.Services))
	for _, in := range cmd.Services {
		svc, err := dto.AssembleService(in)
		if err != nil {
			uc.logger.Errorw("invalid service input", "error", err, "name", in.Name)
			return nil, errors.NewValidationError(err.Error())
		}
		services = append(services, svc)
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, svc := range services {
			if err := uc.repo.Create(txCtx, svc); err != nil {
				return fmt.Errorf("failed to persist service %q: %w", svc.Name(), err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create services", "error", err, "count", len(services))
		return nil, err
	}

	if cmd.MinimumPrice != nil {
		if err := uc.priceWriter.UpdateMinimumPrice(ctx, *cmd.MinimumPrice); err != nil {
			uc.logger.Errorw("failed to update minimum price", "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("services created", "count", len(services))
	return dto.ToServiceDTOList(services), nil
}
