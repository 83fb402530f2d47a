package dto

import (
	"quotecraft/internal/domain/catalog"
)

// ToServiceDTO converts a catalog service aggregate to its response shape.
func ToServiceDTO(svc *catalog.Service) *ServiceDTO {
	if svc == nil {
		return nil
	}

	out := &ServiceDTO{
		ID:             svc.ID(),
		Name:           svc.Name(),
		Description:    svc.Description(),
		IsActive:       svc.IsActive(),
		Features:       make([]FeatureDTO, 0, len(svc.Features())),
		PricingOptions: make([]PricingOptionDTO, 0, len(svc.PricingOptions())),
		Questions:      make([]QuestionDTO, 0, len(svc.Questions())),
		CreatedAt:      svc.CreatedAt(),
		UpdatedAt:      svc.UpdatedAt(),
	}

	for _, f := range svc.Features() {
		out.Features = append(out.Features, FeatureDTO{
			ID:          f.ID(),
			Name:        f.Name(),
			Description: f.Description(),
		})
	}

	for _, po := range svc.PricingOptions() {
		poDTO := PricingOptionDTO{
			ID:              po.ID(),
			Name:            po.Name(),
			Discount:        po.Discount(),
			BasePrice:       po.BasePrice(),
			DiscountedPrice: po.DiscountedPrice(),
			IsActive:        po.IsActive(),
			Features:        make([]FeatureInclusionDTO, 0, len(po.Features())),
		}
		for _, fi := range po.Features() {
			poDTO.Features = append(poDTO.Features, FeatureInclusionDTO{
				FeatureName: fi.FeatureName,
				IsIncluded:  fi.Included,
			})
		}
		out.PricingOptions = append(out.PricingOptions, poDTO)
	}

	for _, q := range svc.Questions() {
		qDTO := QuestionDTO{
			ID:         q.ID(),
			Text:       q.Text(),
			Type:       q.Type().String(),
			UnitPrice:  q.UnitPrice(),
			IsRequired: q.IsRequired(),
			Order:      q.Order(),
			IsActive:   q.IsActive(),
			Options:    make([]QuestionOptionDTO, 0, len(q.Options())),
		}
		for _, opt := range q.Options() {
			qDTO.Options = append(qDTO.Options, QuestionOptionDTO{
				ID:              opt.ID(),
				Value:           opt.Value(),
				Label:           opt.Label(),
				AdditionalPrice: opt.AdditionalPrice(),
				Order:           opt.Order(),
			})
		}
		out.Questions = append(out.Questions, qDTO)
	}

	return out
}

// ToServiceDTOList batch converts services.
func ToServiceDTOList(services []*catalog.Service) []*ServiceDTO {
	dtos := make([]*ServiceDTO, 0, len(services))
	for _, svc := range services {
		dtos = append(dtos, ToServiceDTO(svc))
	}
	return dtos
}

// AssembleService builds a fresh service aggregate from the nested write
// shape, running every domain validation on the way.
func AssembleService(in ServiceInput) (*catalog.Service, error) {
	svc, err := catalog.NewService(in.Name, in.Description)
	if err != nil {
		return nil, err
	}
	return populateChildren(svc, in)
}

// PopulateService replaces an existing service's name, description and full
// children set from the write shape. Updates are wholesale.
func PopulateService(svc *catalog.Service, in ServiceInput) error {
	if err := svc.Rename(in.Name, in.Description); err != nil {
		return err
	}
	svc.ClearChildren()
	_, err := populateChildren(svc, in)
	return err
}

func populateChildren(svc *catalog.Service, in ServiceInput) (*catalog.Service, error) {
	for _, f := range in.Features {
		if _, err := svc.AddFeature(f.Name, f.Description); err != nil {
			return nil, err
		}
	}

	for _, po := range in.PricingOptions {
		inclusions := make([]catalog.FeatureInclusion, 0, len(po.Features))
		for _, fi := range po.Features {
			inclusions = append(inclusions, catalog.FeatureInclusion{
				FeatureName: fi.FeatureName,
				Included:    fi.IsIncluded,
			})
		}
		if _, err := svc.AddPricingOption(po.Name, po.Discount, po.BasePrice, inclusions); err != nil {
			return nil, err
		}
	}

	for _, qIn := range in.Questions {
		qType, err := catalog.ParseQuestionType(qIn.Type)
		if err != nil {
			return nil, err
		}
		q, err := svc.AddQuestion(qIn.Text, qType, qIn.UnitPrice, qIn.IsRequired, qIn.Order)
		if err != nil {
			return nil, err
		}
		for _, optIn := range qIn.Options {
			if _, err := q.AddOption(optIn.Value, optIn.Label, optIn.AdditionalPrice, optIn.Order); err != nil {
				return nil, err
			}
		}
	}

	return svc, nil
}
