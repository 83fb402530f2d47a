package handlers

import (
	"context"

	purchasedto "quotecraft/internal/application/purchase/dto"
	"quotecraft/internal/application/purchase/usecases"
)

// Use case interfaces for PurchaseHandler

type createPurchaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePurchaseCommand) (*usecases.CreatePurchaseResult, error)
}

type getPurchaseUseCase interface {
	Execute(ctx context.Context, purchaseID uint) (*purchasedto.PurchaseDetailDTO, error)
}

type finalizePurchaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.FinalizePurchaseCommand) (*usecases.FinalizePurchaseResult, error)
}

type deletePurchasedServiceUseCase interface {
	Execute(ctx context.Context, purchasedServiceID uint) (*purchasedto.PurchaseDetailDTO, error)
}
