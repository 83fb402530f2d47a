package usecases

import (
	"context"

	"quotecraft/internal/application/purchase/dto"
	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/shared/logger"
)

type DeletePurchasedServiceUseCase struct {
	purchaseRepo purchase.Repository
	getPurchase  *GetPurchaseUseCase
	logger       logger.Interface
}

func NewDeletePurchasedServiceUseCase(
	purchaseRepo purchase.Repository,
	getPurchase *GetPurchaseUseCase,
	logger logger.Interface,
) *DeletePurchasedServiceUseCase {
	return &DeletePurchasedServiceUseCase{
		purchaseRepo: purchaseRepo,
		getPurchase:  getPurchase,
		logger:       logger,
	}
}

// Execute removes one purchased-service snapshot line with its plan, feature
// and answer children, then returns the owning purchase's updated detail
// view. Removal works on submitted purchases too.
func (uc *DeletePurchasedServiceUseCase) Execute(ctx context.Context, purchasedServiceID uint) (*dto.PurchaseDetailDTO, error) {
	owner, err := uc.purchaseRepo.GetByPurchasedServiceID(ctx, purchasedServiceID)
	if err != nil {
		return nil, err
	}

	if err := uc.purchaseRepo.DeletePurchasedService(ctx, purchasedServiceID); err != nil {
		uc.logger.Errorw("failed to delete purchased service",
			"error", err, "purchased_service_id", purchasedServiceID)
		return nil, err
	}

	uc.logger.Infow("purchased service deleted",
		"purchased_service_id", purchasedServiceID, "purchase_id", owner.ID())

	return uc.getPurchase.Execute(ctx, owner.ID())
}
