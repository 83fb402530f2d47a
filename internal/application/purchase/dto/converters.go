package dto

import (
	"quotecraft/internal/domain/purchase"
)

// ToPurchaseDTO converts a purchase aggregate with its snapshot tree.
func ToPurchaseDTO(p *purchase.Purchase) *PurchaseDTO {
	if p == nil {
		return nil
	}
	out := &PurchaseDTO{
		ID:             p.ID(),
		ContactID:      p.ContactID(),
		AddressID:      p.AddressID(),
		TotalAmount:    p.TotalAmount(),
		IsSubmitted:    p.IsSubmitted(),
		Signature:      p.Signature(),
		Services:       make([]PurchasedServiceDTO, 0, len(p.Services())),
		CustomProducts: make([]CustomProductDTO, 0, len(p.CustomProducts())),
		CreatedAt:      p.CreatedAt(),
	}
	for _, ps := range p.Services() {
		out.Services = append(out.Services, toPurchasedServiceDTO(ps))
	}
	for _, cp := range p.CustomProducts() {
		out.CustomProducts = append(out.CustomProducts, CustomProductDTO{
			ID:          cp.ID(),
			Name:        cp.Name(),
			Description: cp.Description(),
			Price:       cp.Price(),
		})
	}
	return out
}

func toPurchasedServiceDTO(ps *purchase.PurchasedService) PurchasedServiceDTO {
	out := PurchasedServiceDTO{
		ID:          ps.ID(),
		ServiceName: ps.ServiceName(),
		Description: ps.Description(),
		Plans:       make([]PlanSnapshotDTO, 0, len(ps.Plans())),
		Features:    make([]FeatureSnapshotDTO, 0, len(ps.Features())),
		Answers:     make([]QuestionAnswerDTO, 0, len(ps.Answers())),
	}
	for _, plan := range ps.Plans() {
		out.Plans = append(out.Plans, toPlanSnapshotDTO(plan))
	}
	for _, fs := range ps.Features() {
		out.Features = append(out.Features, toFeatureSnapshotDTO(fs))
	}
	if selected := ps.SelectedPlan(); selected != nil {
		selectedDTO := toPlanSnapshotDTO(selected)
		out.SelectedPlan = &selectedDTO
	}
	for _, qa := range ps.Answers() {
		out.Answers = append(out.Answers, toQuestionAnswerDTO(qa))
	}
	return out
}

func toPlanSnapshotDTO(plan *purchase.PlanSnapshot) PlanSnapshotDTO {
	out := PlanSnapshotDTO{
		ID:       plan.ID(),
		Name:     plan.Name(),
		Discount: plan.Discount(),
		Features: make([]PlanFeatureDTO, 0, len(plan.Features())),
	}
	for _, pf := range plan.Features() {
		out.Features = append(out.Features, PlanFeatureDTO{
			ID:         pf.ID(),
			Feature:    toFeatureSnapshotDTO(pf.Feature()),
			IsIncluded: pf.Included(),
		})
	}
	return out
}

func toFeatureSnapshotDTO(fs *purchase.FeatureSnapshot) FeatureSnapshotDTO {
	return FeatureSnapshotDTO{
		ID:          fs.ID(),
		Name:        fs.Name(),
		Description: fs.Description(),
	}
}

func toQuestionAnswerDTO(qa *purchase.QuestionAnswer) QuestionAnswerDTO {
	out := QuestionAnswerDTO{
		ID:           qa.ID(),
		QuestionName: qa.QuestionName(),
		QuestionType: qa.QuestionType().String(),
		UnitPrice:    qa.UnitPrice(),
		Answer:       qa.BoolAnswer(),
		Options:      make([]OptionAnswerDTO, 0, len(qa.Options())),
	}
	for _, oa := range qa.Options() {
		out.Options = append(out.Options, OptionAnswerDTO{
			ID:    oa.ID(),
			Value: oa.Value(),
			Label: oa.Label(),
			Qty:   oa.Qty(),
		})
	}
	return out
}
