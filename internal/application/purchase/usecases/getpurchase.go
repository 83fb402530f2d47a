package usecases

import (
	"context"
	"fmt"

	contactdto "quotecraft/internal/application/contact/dto"
	"quotecraft/internal/application/purchase/dto"
	settingsuc "quotecraft/internal/application/settings/usecases"
	"quotecraft/internal/domain/contact"
	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type GetPurchaseUseCase struct {
	purchaseRepo purchase.Repository
	contactRepo  contact.Repository
	settings     *settingsuc.GetSettingsUseCase
	logger       logger.Interface
}

func NewGetPurchaseUseCase(
	purchaseRepo purchase.Repository,
	contactRepo contact.Repository,
	settings *settingsuc.GetSettingsUseCase,
	logger logger.Interface,
) *GetPurchaseUseCase {
	return &GetPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		contactRepo:  contactRepo,
		settings:     settings,
		logger:       logger,
	}
}

// Execute assembles the review view: the full snapshot tree, the contact it
// was quoted for and the global minimum price.
func (uc *GetPurchaseUseCase) Execute(ctx context.Context, purchaseID uint) (*dto.PurchaseDetailDTO, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	return uc.assembleDetail(ctx, p)
}

func (uc *GetPurchaseUseCase) assembleDetail(ctx context.Context, p *purchase.Purchase) (*dto.PurchaseDetailDTO, error) {
	detail := &dto.PurchaseDetailDTO{PurchaseDTO: *dto.ToPurchaseDTO(p)}

	c, err := uc.contactRepo.GetByContactID(ctx, p.ContactID())
	if err != nil {
		// The CRM may have deleted the contact after the quote was built;
		// the snapshot view still renders without it.
		if !errors.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load contact: %w", err)
		}
		uc.logger.Warnw("purchase contact no longer mirrored", "purchase_id", p.ID(), "contact_id", p.ContactID())
	} else {
		detail.Contact = contactdto.ToContactDTO(c)
	}

	g, err := uc.settings.Execute(ctx)
	if err != nil {
		return nil, err
	}
	detail.MinimumPrice = g.MinimumPrice

	return detail, nil
}
