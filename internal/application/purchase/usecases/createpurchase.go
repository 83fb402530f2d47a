package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"quotecraft/internal/application/purchase/dto"
	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/domain/contact"
	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/shared/db"
	"quotecraft/internal/shared/logger"
)

type ServiceSelectionInput struct {
	ServiceID       uint
	PricingOptionID uint
	Answers         []AnswerInput
}

type AnswerInput struct {
	QuestionID uint
	BoolAnswer bool
	Options    map[string]string
}

type CustomProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

type CreatePurchaseCommand struct {
	ContactID      string
	AddressID      *uint
	TotalAmount    decimal.Decimal
	Services       []ServiceSelectionInput
	CustomProducts []CustomProductInput
}

// CreatePurchaseResult carries the created purchase and, when the CRM
// review-link push failed, a warning the client can surface without
// treating the purchase as failed.
type CreatePurchaseResult struct {
	Purchase *dto.PurchaseDTO
	Warning  string
}

// ReviewLinkConfig locates the CRM custom field that receives the quote
// review URL for the contact.
type ReviewLinkConfig struct {
	FrontendURL string
	FieldID     string
}

type CreatePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	serviceRepo  catalog.ServiceRepository
	contactRepo  contact.Repository
	txManager    *db.TransactionManager
	crm          CRMGateway
	reviewLink   ReviewLinkConfig
	logger       logger.Interface
}

func NewCreatePurchaseUseCase(
	purchaseRepo purchase.Repository,
	serviceRepo catalog.ServiceRepository,
	contactRepo contact.Repository,
	txManager *db.TransactionManager,
	crm CRMGateway,
	reviewLink ReviewLinkConfig,
	logger logger.Interface,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		serviceRepo:  serviceRepo,
		contactRepo:  contactRepo,
		txManager:    txManager,
		crm:          crm,
		reviewLink:   reviewLink,
		logger:       logger,
	}
}

// Execute resolves the selected services from the live catalog, builds the
// frozen snapshot tree and commits it in one transaction. After the commit
// it pushes a review link into the contact's CRM custom field; a CRM failure
// is logged and surfaced as a warning, never rolled back.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, cmd CreatePurchaseCommand) (*CreatePurchaseResult, error) {
	if _, err := uc.contactRepo.GetByContactID(ctx, cmd.ContactID); err != nil {
		return nil, err
	}

	selections := make([]purchase.ServiceSelection, 0, len(cmd.Services))
	for _, in := range cmd.Services {
		svc, err := uc.serviceRepo.GetByID(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		answers := make([]purchase.AnsweredQuestion, 0, len(in.Answers))
		for _, ans := range in.Answers {
			answers = append(answers, purchase.AnsweredQuestion{
				QuestionID: ans.QuestionID,
				BoolAnswer: ans.BoolAnswer,
				Options:    ans.Options,
			})
		}
		selections = append(selections, purchase.ServiceSelection{
			Service:               svc,
			ChosenPricingOptionID: in.PricingOptionID,
			Answers:               answers,
		})
	}

	customProducts := make([]purchase.CustomProductInput, 0, len(cmd.CustomProducts))
	for _, cp := range cmd.CustomProducts {
		customProducts = append(customProducts, purchase.CustomProductInput{
			Name:        cp.Name,
			Description: cp.Description,
			Price:       cp.Price,
		})
	}

	p, err := purchase.Build(cmd.ContactID, cmd.AddressID, cmd.TotalAmount, selections, customProducts)
	if err != nil {
		return nil, err
	}

	// The submitted total is authoritative; a disagreement with the derived
	// estimate is only worth a trace.
	if estimate := purchase.EstimateTotal(selections, customProducts); !estimate.Equal(cmd.TotalAmount) {
		uc.logger.Debugw("client total differs from estimate",
			"contact_id", cmd.ContactID,
			"client_total", cmd.TotalAmount,
			"estimate", estimate)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.purchaseRepo.Create(txCtx, p)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist purchase", "error", err, "contact_id", cmd.ContactID)
		return nil, fmt.Errorf("failed to persist purchase: %w", err)
	}

	uc.logger.Infow("purchase created",
		"purchase_id", p.ID(),
		"contact_id", cmd.ContactID,
		"services", len(p.Services()),
		"custom_products", len(p.CustomProducts()))

	result := &CreatePurchaseResult{Purchase: dto.ToPurchaseDTO(p)}

	reviewURL := fmt.Sprintf("%s/user/review/%d/", uc.reviewLink.FrontendURL, p.ID())
	if err := uc.crm.UpdateContactFields(ctx, cmd.ContactID, []CustomFieldUpdate{
		{ID: uc.reviewLink.FieldID, Value: reviewURL},
	}); err != nil {
		uc.logger.Warnw("failed to push review link to crm",
			"error", err, "purchase_id", p.ID(), "contact_id", cmd.ContactID)
		result.Warning = "purchase created but the CRM review link could not be updated"
	}

	return result, nil
}
