package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Service is the catalog aggregate root: a sellable offering with features,
// pricing options and a questionnaire. Services are mutable master data;
// purchases never reference them directly, only frozen copies.
type Service struct {
	id          uint
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time

	features       []*Feature
	pricingOptions []*PricingOption
	questions      []*Question
}

// NewService creates an active service without children.
func NewService(name, description string) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	now := time.Now()
	return &Service{
		name:        name,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructService rebuilds a service with its children from persistence.
func ReconstructService(
	id uint,
	name, description string,
	isActive bool,
	createdAt, updatedAt time.Time,
	features []*Feature,
	pricingOptions []*PricingOption,
	questions []*Question,
) (*Service, error) {
	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	return &Service{
		id:             id,
		name:           name,
		description:    description,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		features:       features,
		pricingOptions: pricingOptions,
		questions:      questions,
	}, nil
}

func (s *Service) ID() uint            { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) Description() string { return s.description }
func (s *Service) IsActive() bool      { return s.isActive }
func (s *Service) CreatedAt() time.Time {
	return s.createdAt
}
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

func (s *Service) Features() []*Feature {
	out := make([]*Feature, len(s.features))
	copy(out, s.features)
	return out
}

func (s *Service) PricingOptions() []*PricingOption {
	out := make([]*PricingOption, len(s.pricingOptions))
	copy(out, s.pricingOptions)
	return out
}

func (s *Service) Questions() []*Question {
	out := make([]*Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Rename updates the basic service fields.
func (s *Service) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("service name is required")
	}
	s.name = name
	s.description = description
	s.touch()
	return nil
}

// ToggleActive flips the active flag and returns the new state.
func (s *Service) ToggleActive() bool {
	s.isActive = !s.isActive
	s.touch()
	return s.isActive
}

// AddFeature attaches a feature, enforcing (service, name) uniqueness.
func (s *Service) AddFeature(name, description string) (*Feature, error) {
	if s.FeatureByName(name) != nil {
		return nil, fmt.Errorf("feature %q already exists on service %q", name, s.name)
	}
	f, err := NewFeature(name, description)
	if err != nil {
		return nil, err
	}
	s.features = append(s.features, f)
	s.touch()
	return f, nil
}

// FeatureByName resolves a feature of this service by exact name.
func (s *Service) FeatureByName(name string) *Feature {
	for _, f := range s.features {
		if f.Name() == strings.TrimSpace(name) {
			return f
		}
	}
	return nil
}

// AddPricingOption attaches a plan. Every feature inclusion must reference a
// feature of this same service; a dangling name is rejected, which is what
// keeps cross-service junctions impossible.
func (s *Service) AddPricingOption(name string, discount, basePrice decimal.Decimal, inclusions []FeatureInclusion) (*PricingOption, error) {
	for _, po := range s.pricingOptions {
		if po.Name() == strings.TrimSpace(name) {
			return nil, fmt.Errorf("pricing option %q already exists on service %q", name, s.name)
		}
	}
	po, err := NewPricingOption(name, discount, basePrice)
	if err != nil {
		return nil, err
	}
	for _, inc := range inclusions {
		if s.FeatureByName(inc.FeatureName) == nil {
			return nil, fmt.Errorf("feature %q does not belong to service %q", inc.FeatureName, s.name)
		}
		po.addInclusion(inc)
	}
	s.pricingOptions = append(s.pricingOptions, po)
	s.touch()
	return po, nil
}

// PricingOptionByID resolves a plan of this service by id.
func (s *Service) PricingOptionByID(id uint) *PricingOption {
	for _, po := range s.pricingOptions {
		if po.ID() == id {
			return po
		}
	}
	return nil
}

// AddQuestion attaches a questionnaire entry.
func (s *Service) AddQuestion(text string, qType QuestionType, unitPrice decimal.Decimal, isRequired bool, order int) (*Question, error) {
	q, err := NewQuestion(text, qType, unitPrice, isRequired, order)
	if err != nil {
		return nil, err
	}
	s.questions = append(s.questions, q)
	s.touch()
	return q, nil
}

// QuestionByID resolves a question of this service by id.
func (s *Service) QuestionByID(id uint) *Question {
	for _, q := range s.questions {
		if q.ID() == id {
			return q
		}
	}
	return nil
}

// ClearChildren drops all features, pricing options and questions. Updates
// replace the nested structure wholesale, mirroring how the catalog editor
// submits the full service shape every time.
func (s *Service) ClearChildren() {
	s.features = nil
	s.pricingOptions = nil
	s.questions = nil
	s.touch()
}

// Duplicate produces an unpersisted deep copy of the service with a
// " (Copy)" name suffix.
func (s *Service) Duplicate() (*Service, error) {
	copySvc, err := NewService(s.name+" (Copy)", s.description)
	if err != nil {
		return nil, err
	}
	for _, f := range s.features {
		if _, err := copySvc.AddFeature(f.Name(), f.Description()); err != nil {
			return nil, err
		}
	}
	for _, po := range s.pricingOptions {
		if _, err := copySvc.AddPricingOption(po.Name(), po.Discount(), po.BasePrice(), po.Features()); err != nil {
			return nil, err
		}
	}
	for _, q := range s.questions {
		qCopy, err := copySvc.AddQuestion(q.Text(), q.Type(), q.UnitPrice(), q.IsRequired(), q.Order())
		if err != nil {
			return nil, err
		}
		for _, opt := range q.Options() {
			if _, err := qCopy.AddOption(opt.Value(), opt.Label(), opt.AdditionalPrice(), opt.Order()); err != nil {
				return nil, err
			}
		}
	}
	return copySvc, nil
}

// SetID assigns the persistence identity after insert.
func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID already set")
	}
	s.id = id
	return nil
}

func (s *Service) touch() {
	s.updatedAt = time.Now()
}
