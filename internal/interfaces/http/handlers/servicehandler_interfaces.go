package handlers

import (
	"context"

	catalogdto "quotecraft/internal/application/catalog/dto"
	"quotecraft/internal/application/catalog/usecases"
)

// Use case interfaces for ServiceHandler

type createServicesUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateServicesCommand) ([]*catalogdto.ServiceDTO, error)
}

type updateServiceUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateServiceCommand) (*catalogdto.ServiceDTO, error)
}

type deleteServiceUseCase interface {
	Execute(ctx context.Context, serviceID uint) error
}

type getServiceUseCase interface {
	Execute(ctx context.Context, serviceID uint) (*catalogdto.ServiceDTO, error)
}

type listServicesUseCase interface {
	Execute(ctx context.Context, q usecases.ListServicesQuery) ([]*catalogdto.ServiceDTO, error)
}

type toggleActiveUseCase interface {
	Execute(ctx context.Context, serviceID uint) (*catalogdto.ServiceDTO, error)
}

type duplicateServiceUseCase interface {
	Execute(ctx context.Context, serviceID uint) (*catalogdto.ServiceDTO, error)
}
