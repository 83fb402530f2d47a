package mappers

import (
	"fmt"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/domain/purchase"
	"quotecraft/internal/infrastructure/persistence/models"
)

// PurchaseMapper rebuilds the purchase aggregate from a loaded model tree.
type PurchaseMapper interface {
	ToEntity(model *models.PurchaseModel) (*purchase.Purchase, error)
}

type purchaseMapper struct{}

func NewPurchaseMapper() PurchaseMapper {
	return &purchaseMapper{}
}

func (m *purchaseMapper) ToEntity(model *models.PurchaseModel) (*purchase.Purchase, error) {
	if model == nil {
		return nil, nil
	}

	services := make([]*purchase.PurchasedService, 0, len(model.Services))
	for _, psm := range model.Services {
		ps, err := m.toPurchasedService(&psm)
		if err != nil {
			return nil, err
		}
		services = append(services, ps)
	}

	customProducts := make([]*purchase.CustomProduct, 0, len(model.CustomProducts))
	for _, cpm := range model.CustomProducts {
		customProducts = append(customProducts, purchase.ReconstructCustomProduct(
			cpm.ID, cpm.Name, cpm.Description, cpm.Price,
		))
	}

	return purchase.ReconstructPurchase(
		model.ID,
		model.ContactID,
		model.AddressID,
		model.TotalAmount,
		model.IsSubmitted,
		model.Signature,
		model.CreatedAt,
		services,
		customProducts,
	)
}

func (m *purchaseMapper) toPurchasedService(psm *models.PurchasedServiceModel) (*purchase.PurchasedService, error) {
	featuresByID := make(map[uint]*purchase.FeatureSnapshot, len(psm.Features))
	features := make([]*purchase.FeatureSnapshot, 0, len(psm.Features))
	for _, fsm := range psm.Features {
		fs := purchase.ReconstructFeatureSnapshot(fsm.ID, fsm.Name, fsm.Description)
		featuresByID[fsm.ID] = fs
		features = append(features, fs)
	}

	plans := make([]*purchase.PlanSnapshot, 0, len(psm.Plans))
	for _, plm := range psm.Plans {
		planFeatures := make([]*purchase.PlanFeature, 0, len(plm.Features))
		for _, pfm := range plm.Features {
			fs, ok := featuresByID[pfm.FeatureSnapshotID]
			if !ok {
				return nil, fmt.Errorf("plan feature %d references feature snapshot %d outside purchased service %d",
					pfm.ID, pfm.FeatureSnapshotID, psm.ID)
			}
			planFeatures = append(planFeatures, purchase.ReconstructPlanFeature(pfm.ID, fs, pfm.IsIncluded))
		}
		plans = append(plans, purchase.ReconstructPlanSnapshot(plm.ID, plm.Name, plm.Discount, planFeatures))
	}

	answers := make([]*purchase.QuestionAnswer, 0, len(psm.Answers))
	for _, qam := range psm.Answers {
		qType, err := catalog.ParseQuestionType(qam.QuestionType)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", qam.ID, err)
		}
		options := make([]*purchase.OptionAnswer, 0, len(qam.Options))
		for _, oam := range qam.Options {
			options = append(options, purchase.ReconstructOptionAnswer(oam.ID, oam.Value, oam.Label, oam.Qty))
		}
		answers = append(answers, purchase.ReconstructQuestionAnswer(
			qam.ID, qam.QuestionName, qType, qam.UnitPrice, qam.Answer, options,
		))
	}

	var selectedPlanID uint
	if psm.SelectedPlanID != nil {
		selectedPlanID = *psm.SelectedPlanID
	}

	return purchase.ReconstructPurchasedService(
		psm.ID,
		psm.ServiceName,
		psm.Description,
		plans,
		features,
		answers,
		selectedPlanID,
	)
}
