package usecases

import (
	"context"

	"quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/logger"
)

type GetServiceUseCase struct {
	repo   catalog.ServiceRepository
	logger logger.Interface
}

func NewGetServiceUseCase(repo catalog.ServiceRepository, logger logger.Interface) *GetServiceUseCase {
	return &GetServiceUseCase{repo: repo, logger: logger}
}

func (uc *GetServiceUseCase) Execute(ctx context.Context, serviceID uint) (*dto.ServiceDTO, error) {
	svc, err := uc.repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return dto.ToServiceDTO(svc), nil
}
