package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"quotecraft/internal/application/purchase/dto"
	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

// PlanSelectionInput resolves one purchased service to the candidate plan
// the customer settled on at review time.
type PlanSelectionInput struct {
	PurchasedServiceID uint
	PlanSnapshotID     uint
}

type FinalizePurchaseCommand struct {
	PurchaseID  uint
	Signature   string
	TotalAmount decimal.Decimal
	Selections  []PlanSelectionInput
}

type FinalizePurchaseResult struct {
	Purchase *dto.PurchaseDTO
	Warning  string
}

// AcceptanceConfig names the CRM artifacts written when a quote is accepted:
// the tag marking acceptance and the custom field holding the final total.
type AcceptanceConfig struct {
	AcceptedTag       string
	QuoteTotalFieldID string
}

type FinalizePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	txManager    *db.TransactionManager
	crm          CRMGateway
	acceptance   AcceptanceConfig
	logger       logger.Interface
}

func NewFinalizePurchaseUseCase(
	purchaseRepo purchase.Repository,
	txManager *db.TransactionManager,
	crm CRMGateway,
	acceptance AcceptanceConfig,
	logger logger.Interface,
) *FinalizePurchaseUseCase {
	return &FinalizePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		txManager:    txManager,
		crm:          crm,
		acceptance:   acceptance,
		logger:       logger,
	}
}

// Execute performs the one-way draft to submitted transition. Plan
// selections are validated against the purchase's own snapshots before
// anything is written; the submission flag flips through a compare-and-set
// so concurrent finalizations cannot both win. CRM tagging and the total
// push run after the commit and only ever produce a warning.
func (uc *FinalizePurchaseUseCase) Execute(ctx context.Context, cmd FinalizePurchaseCommand) (*FinalizePurchaseResult, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, cmd.PurchaseID)
	if err != nil {
		return nil, err
	}

	// Runs every domain validation (signature, amount, already-submitted)
	// and resolves each selected plan in memory before touching storage.
	if err := p.Finalize(cmd.Signature, cmd.TotalAmount); err != nil {
		return nil, err
	}

	planNames := make([]string, 0, len(cmd.Selections))
	for _, sel := range cmd.Selections {
		ps := p.ServiceByID(sel.PurchasedServiceID)
		if ps == nil {
			return nil, errors.NewNotFoundError(
				"purchased service not found",
				fmt.Sprintf("purchased service %d does not belong to purchase %d", sel.PurchasedServiceID, cmd.PurchaseID),
			)
		}
		if err := ps.SelectPlanByID(sel.PlanSnapshotID); err != nil {
			return nil, err
		}
		planNames = append(planNames, ps.SelectedPlan().Name())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.purchaseRepo.MarkSubmitted(txCtx, cmd.PurchaseID, cmd.Signature, cmd.TotalAmount); err != nil {
			return err
		}
		for _, sel := range cmd.Selections {
			if err := uc.purchaseRepo.SetSelectedPlan(txCtx, sel.PurchasedServiceID, sel.PlanSnapshotID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to finalize purchase", "error", err, "purchase_id", cmd.PurchaseID)
		return nil, err
	}

	uc.logger.Infow("purchase finalized",
		"purchase_id", cmd.PurchaseID,
		"total_amount", cmd.TotalAmount,
		"plans", planNames)

	result := &FinalizePurchaseResult{Purchase: dto.ToPurchaseDTO(p)}
	result.Warning = uc.pushAcceptanceToCRM(ctx, p, planNames, cmd.TotalAmount)
	return result, nil
}

// pushAcceptanceToCRM tags the contact with every accepted plan name plus
// the acceptance tag and writes the final total into the quote-total custom
// field. The purchase is already committed; failures degrade to a warning.
func (uc *FinalizePurchaseUseCase) pushAcceptanceToCRM(ctx context.Context, p *purchase.Purchase, planNames []string, total decimal.Decimal) string {
	tags := planNames
	if uc.acceptance.AcceptedTag != "" {
		tags = append(tags, uc.acceptance.AcceptedTag)
	}

	if err := uc.crm.AddTags(ctx, p.ContactID(), tags...); err != nil {
		uc.logger.Warnw("failed to tag crm contact",
			"error", err, "purchase_id", p.ID(), "contact_id", p.ContactID())
		return "purchase finalized but the CRM contact could not be tagged"
	}

	amount, _ := total.Float64()
	if err := uc.crm.UpdateContactFields(ctx, p.ContactID(), []CustomFieldUpdate{
		{ID: uc.acceptance.QuoteTotalFieldID, Value: amount},
	}); err != nil {
		uc.logger.Warnw("failed to push quote total to crm",
			"error", err, "purchase_id", p.ID(), "contact_id", p.ContactID())
		return "purchase finalized but the CRM quote total could not be updated"
	}

	return ""
}
