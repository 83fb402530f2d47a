package purchase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/shared/errors"
)

// AnsweredQuestion is one questionnaire answer submitted with a purchase:
// the live question id, the boolean flag, and for option-bearing questions
// a map of option label to client-supplied quantity.
type AnsweredQuestion struct {
	QuestionID uint
	BoolAnswer bool
	Options    map[string]string
}

// ServiceSelection pairs a resolved catalog service with the pricing option
// the customer chose and their answers. The caller resolves the service
// aggregate before building so the builder itself stays free of storage
// concerns.
type ServiceSelection struct {
	Service               *catalog.Service
	ChosenPricingOptionID uint
	Answers               []AnsweredQuestion
}

// CustomProductInput is an ad-hoc line item submitted with a purchase.
type CustomProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// Build assembles the full purchase snapshot tree from live catalog data.
//
// For each selected service it copies name and description by value, then
// freezes EVERY pricing option currently on the service as a candidate plan
// snapshot, not just the chosen one: keeping all candidates lets a customer
// compare and re-resolve plans at review time without touching the moving
// catalog. The features included in the chosen option become feature
// snapshots joined to the chosen plan through plan-feature rows, and the
// chosen plan snapshot is resolved as selected_plan by iteration identity.
//
// The returned purchase carries no persistence identities yet; the caller
// commits the whole tree in one transaction or not at all.
func Build(
	contactID string,
	addressID *uint,
	totalAmount decimal.Decimal,
	selections []ServiceSelection,
	customProducts []CustomProductInput,
) (*Purchase, error) {
	p, err := NewPurchase(contactID, addressID, totalAmount)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	for _, sel := range selections {
		ps, err := buildPurchasedService(sel)
		if err != nil {
			return nil, err
		}
		p.AddService(ps)
	}

	for _, cpIn := range customProducts {
		cp, err := NewCustomProduct(cpIn.Name, cpIn.Description, cpIn.Price)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		p.AddCustomProduct(cp)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func buildPurchasedService(sel ServiceSelection) (*PurchasedService, error) {
	svc := sel.Service
	if svc == nil {
		return nil, errors.NewValidationError("service selection is missing its service")
	}

	chosen := svc.PricingOptionByID(sel.ChosenPricingOptionID)
	if chosen == nil {
		return nil, errors.NewValidationError(
			"pricing option not found",
			fmt.Sprintf("pricing option %d does not belong to service %q", sel.ChosenPricingOptionID, svc.Name()),
		)
	}

	ps := NewPurchasedService(svc.Name(), svc.Description())

	// Freeze every current pricing option as a candidate plan; remember
	// which snapshot came from the chosen option.
	var chosenPlan *PlanSnapshot
	for _, po := range svc.PricingOptions() {
		plan := NewPlanSnapshot(po.Name(), po.Discount())
		ps.AddPlan(plan)
		if po == chosen {
			chosenPlan = plan
		}
	}

	for _, featureName := range chosen.IncludedFeatureNames() {
		feature := svc.FeatureByName(featureName)
		if feature == nil {
			// Inclusions are validated against the service at catalog write
			// time, so a dangling name here means corrupted master data.
			return nil, errors.NewInternalError(
				"catalog feature inclusion is dangling",
				fmt.Sprintf("feature %q missing on service %q", featureName, svc.Name()),
			)
		}
		fs := NewFeatureSnapshot(feature.Name(), feature.Description())
		ps.AddFeature(fs)
		chosenPlan.AttachFeature(fs, true)
	}

	if err := ps.SelectPlan(chosenPlan); err != nil {
		return nil, err
	}

	for _, ans := range sel.Answers {
		qa, err := buildAnswer(svc, ans)
		if err != nil {
			return nil, err
		}
		ps.AddAnswer(qa)
	}

	return ps, nil
}

// buildAnswer dispatches on the question type: each variant of the answer
// union has its own construction path.
func buildAnswer(svc *catalog.Service, ans AnsweredQuestion) (*QuestionAnswer, error) {
	q := svc.QuestionByID(ans.QuestionID)
	if q == nil {
		return nil, errors.NewValidationError(
			"question not found",
			fmt.Sprintf("question %d does not belong to service %q", ans.QuestionID, svc.Name()),
		)
	}

	switch q.Type() {
	case catalog.QuestionTypeBoolean:
		return NewBooleanAnswer(q, ans.BoolAnswer), nil
	case catalog.QuestionTypeExtraChoice:
		return NewExtraChoiceAnswer(q, ans.BoolAnswer, sortedKeys(ans.Options))
	case catalog.QuestionTypeChoice, catalog.QuestionTypeMultipleChoice:
		return NewChoiceAnswer(q, ans.Options)
	default:
		return NewPlainAnswer(q), nil
	}
}
