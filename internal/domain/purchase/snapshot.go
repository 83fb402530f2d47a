package purchase

import (
	"github.com/shopspring/decimal"

	"quotecraft/internal/shared/errors"
)

// PlanSnapshot is a frozen copy of one catalog pricing option considered for
// a purchased service. Name and discount are copied by value; later catalog
// edits never reach it.
type PlanSnapshot struct {
	id       uint
	name     string
	discount decimal.Decimal
	features []*PlanFeature
}

// NewPlanSnapshot freezes a pricing option's identity-bearing values.
func NewPlanSnapshot(name string, discount decimal.Decimal) *PlanSnapshot {
	return &PlanSnapshot{
		name:     name,
		discount: discount,
	}
}

// ReconstructPlanSnapshot rebuilds a plan snapshot from persistence.
func ReconstructPlanSnapshot(id uint, name string, discount decimal.Decimal, features []*PlanFeature) *PlanSnapshot {
	return &PlanSnapshot{
		id:       id,
		name:     name,
		discount: discount,
		features: features,
	}
}

func (p *PlanSnapshot) ID() uint                  { return p.id }
func (p *PlanSnapshot) Name() string              { return p.name }
func (p *PlanSnapshot) Discount() decimal.Decimal { return p.discount }

// Features returns the plan's feature inclusion rows.
func (p *PlanSnapshot) Features() []*PlanFeature {
	out := make([]*PlanFeature, len(p.features))
	copy(out, p.features)
	return out
}

// AttachFeature records that this candidate plan includes (or excludes) a
// feature snapshot of the same purchased service.
func (p *PlanSnapshot) AttachFeature(feature *FeatureSnapshot, included bool) *PlanFeature {
	pf := &PlanFeature{feature: feature, included: included}
	p.features = append(p.features, pf)
	return pf
}

// SetID assigns the persistence identity after insert.
func (p *PlanSnapshot) SetID(id uint) { p.id = id }

// FeatureSnapshot is a frozen copy of one catalog feature under a purchased
// service.
type FeatureSnapshot struct {
	id          uint
	name        string
	description string
}

// NewFeatureSnapshot freezes a feature's name and description.
func NewFeatureSnapshot(name, description string) *FeatureSnapshot {
	return &FeatureSnapshot{name: name, description: description}
}

// ReconstructFeatureSnapshot rebuilds a feature snapshot from persistence.
func ReconstructFeatureSnapshot(id uint, name, description string) *FeatureSnapshot {
	return &FeatureSnapshot{id: id, name: name, description: description}
}

func (f *FeatureSnapshot) ID() uint            { return f.id }
func (f *FeatureSnapshot) Name() string        { return f.name }
func (f *FeatureSnapshot) Description() string { return f.description }

// SetID assigns the persistence identity after insert.
func (f *FeatureSnapshot) SetID(id uint) { f.id = id }

// PlanFeature links a candidate plan snapshot to a feature snapshot with its
// own inclusion flag, independent of the live catalog's junction rows.
type PlanFeature struct {
	id       uint
	feature  *FeatureSnapshot
	included bool
}

func (pf *PlanFeature) ID() uint                  { return pf.id }
func (pf *PlanFeature) Feature() *FeatureSnapshot { return pf.feature }
func (pf *PlanFeature) Included() bool            { return pf.included }

// ReconstructPlanFeature rebuilds a plan-feature link from persistence.
func ReconstructPlanFeature(id uint, feature *FeatureSnapshot, included bool) *PlanFeature {
	return &PlanFeature{id: id, feature: feature, included: included}
}

// SetID assigns the persistence identity after insert.
func (pf *PlanFeature) SetID(id uint) { pf.id = id }

// PurchasedService is the frozen snapshot of one selected catalog service at
// purchase time: copied name and description, every candidate plan of the
// service, the chosen plan's included features, and the questionnaire
// answers scoped to it.
type PurchasedService struct {
	id           uint
	serviceName  string
	description  string
	plans        []*PlanSnapshot
	features     []*FeatureSnapshot
	selectedPlan *PlanSnapshot
	answers      []*QuestionAnswer
}

// NewPurchasedService freezes a service's name and description.
func NewPurchasedService(serviceName, description string) *PurchasedService {
	return &PurchasedService{
		serviceName: serviceName,
		description: description,
	}
}

// ReconstructPurchasedService rebuilds a purchased service from persistence.
// selectedPlanID of zero means no plan has been resolved yet.
func ReconstructPurchasedService(
	id uint,
	serviceName, description string,
	plans []*PlanSnapshot,
	features []*FeatureSnapshot,
	answers []*QuestionAnswer,
	selectedPlanID uint,
) (*PurchasedService, error) {
	ps := &PurchasedService{
		id:          id,
		serviceName: serviceName,
		description: description,
		plans:       plans,
		features:    features,
		answers:     answers,
	}
	if selectedPlanID != 0 {
		if err := ps.SelectPlanByID(selectedPlanID); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func (ps *PurchasedService) ID() uint            { return ps.id }
func (ps *PurchasedService) ServiceName() string { return ps.serviceName }
func (ps *PurchasedService) Description() string { return ps.description }

func (ps *PurchasedService) Plans() []*PlanSnapshot {
	out := make([]*PlanSnapshot, len(ps.plans))
	copy(out, ps.plans)
	return out
}

func (ps *PurchasedService) Features() []*FeatureSnapshot {
	out := make([]*FeatureSnapshot, len(ps.features))
	copy(out, ps.features)
	return out
}

func (ps *PurchasedService) Answers() []*QuestionAnswer {
	out := make([]*QuestionAnswer, len(ps.answers))
	copy(out, ps.answers)
	return out
}

// SelectedPlan returns the resolved plan snapshot, or nil while the
// purchase is still comparing candidates.
func (ps *PurchasedService) SelectedPlan() *PlanSnapshot {
	return ps.selectedPlan
}

// AddPlan attaches a candidate plan snapshot.
func (ps *PurchasedService) AddPlan(plan *PlanSnapshot) {
	ps.plans = append(ps.plans, plan)
}

// AddFeature attaches a feature snapshot.
func (ps *PurchasedService) AddFeature(feature *FeatureSnapshot) {
	ps.features = append(ps.features, feature)
}

// AddAnswer attaches a questionnaire answer.
func (ps *PurchasedService) AddAnswer(answer *QuestionAnswer) {
	ps.answers = append(ps.answers, answer)
}

// SelectPlan resolves the chosen plan. The plan must be one of this
// purchased service's own snapshots; a plan from another purchase or from
// the live catalog can never be selected.
func (ps *PurchasedService) SelectPlan(plan *PlanSnapshot) error {
	for _, candidate := range ps.plans {
		if candidate == plan {
			ps.selectedPlan = plan
			return nil
		}
	}
	return errors.NewValidationError("selected plan does not belong to this purchased service")
}

// SelectPlanByID resolves the chosen plan by snapshot id.
func (ps *PurchasedService) SelectPlanByID(planID uint) error {
	for _, candidate := range ps.plans {
		if candidate.ID() == planID {
			ps.selectedPlan = candidate
			return nil
		}
	}
	return errors.NewValidationError("selected plan does not belong to this purchased service")
}

// SetID assigns the persistence identity after insert.
func (ps *PurchasedService) SetID(id uint) { ps.id = id }
