package mappers

import (
	"fmt"

	"quotecraft/internal/domain/catalog"
	"quotecraft/internal/infrastructure/persistence/models"
)

// ServiceMapper converts loaded catalog model trees into domain aggregates.
// The write direction lives in the repository, which inserts the tree level
// by level to wire the pricing-option feature junctions.
type ServiceMapper interface {
	ToEntity(model *models.ServiceModel) (*catalog.Service, error)
	ToEntities(models []*models.ServiceModel) ([]*catalog.Service, error)
}

type serviceMapper struct{}

func NewServiceMapper() ServiceMapper {
	return &serviceMapper{}
}

func (m *serviceMapper) ToEntity(model *models.ServiceModel) (*catalog.Service, error) {
	if model == nil {
		return nil, nil
	}

	featureNamesByID := make(map[uint]string, len(model.Features))
	features := make([]*catalog.Feature, 0, len(model.Features))
	for _, fm := range model.Features {
		featureNamesByID[fm.ID] = fm.Name
		features = append(features, catalog.ReconstructFeature(fm.ID, fm.Name, fm.Description, fm.CreatedAt))
	}

	pricingOptions := make([]*catalog.PricingOption, 0, len(model.PricingOptions))
	for _, pom := range model.PricingOptions {
		inclusions := make([]catalog.FeatureInclusion, 0, len(pom.Features))
		for _, jm := range pom.Features {
			name, ok := featureNamesByID[jm.FeatureID]
			if !ok {
				return nil, fmt.Errorf("pricing option %d references feature %d outside service %d", pom.ID, jm.FeatureID, model.ID)
			}
			inclusions = append(inclusions, catalog.FeatureInclusion{
				FeatureName: name,
				Included:    jm.IsIncluded,
			})
		}
		pricingOptions = append(pricingOptions, catalog.ReconstructPricingOption(
			pom.ID, pom.Name, pom.Discount, pom.BasePrice, pom.IsActive, pom.CreatedAt, inclusions,
		))
	}

	questions := make([]*catalog.Question, 0, len(model.Questions))
	for _, qm := range model.Questions {
		qType, err := catalog.ParseQuestionType(qm.Type)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", qm.ID, err)
		}
		options := make([]*catalog.QuestionOption, 0, len(qm.Options))
		for _, om := range qm.Options {
			options = append(options, catalog.ReconstructQuestionOption(
				om.ID, om.Value, om.Label, om.AdditionalPrice, om.DisplayOrder, om.IsActive,
			))
		}
		questions = append(questions, catalog.ReconstructQuestion(
			qm.ID, qm.Text, qType, qm.UnitPrice, qm.IsRequired, qm.DisplayOrder, qm.IsActive, qm.CreatedAt, options,
		))
	}

	return catalog.ReconstructService(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
		features,
		pricingOptions,
		questions,
	)
}

func (m *serviceMapper) ToEntities(serviceModels []*models.ServiceModel) ([]*catalog.Service, error) {
	entities := make([]*catalog.Service, 0, len(serviceModels))
	for _, sm := range serviceModels {
		entity, err := m.ToEntity(sm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
