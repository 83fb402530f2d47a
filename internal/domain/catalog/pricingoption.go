package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalHundred = decimal.NewFromInt(100)
)

// FeatureInclusion records whether a pricing option includes a feature of
// the same service. Features are referenced by name; Service.AddPricingOption
// guarantees the name resolves within the owning service, which keeps the
// feature/pricing-option same-service invariant structural.
type FeatureInclusion struct {
	FeatureName string
	Included    bool
}

// PricingOption is one sellable plan of a service: a base price, a discount
// percentage and the set of features the plan includes.
type PricingOption struct {
	id        uint
	name      string
	discount  decimal.Decimal
	basePrice decimal.Decimal
	isActive  bool
	createdAt time.Time
	features  []FeatureInclusion
}

// NewPricingOption creates a pricing option. The discount must lie in
// [0,100] and the base price must not be negative; both are rejected at
// write time rather than clamped silently.
func NewPricingOption(name string, discount, basePrice decimal.Decimal) (*PricingOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("pricing option name is required")
	}
	if discount.LessThan(decimalZero) || discount.GreaterThan(decimalHundred) {
		return nil, fmt.Errorf("discount must be between 0 and 100, got %s", discount)
	}
	if basePrice.LessThan(decimalZero) {
		return nil, fmt.Errorf("base price cannot be negative, got %s", basePrice)
	}
	return &PricingOption{
		name:      name,
		discount:  discount,
		basePrice: basePrice,
		isActive:  true,
		createdAt: time.Now(),
	}, nil
}

// ReconstructPricingOption rebuilds a pricing option from persistence.
func ReconstructPricingOption(
	id uint,
	name string,
	discount, basePrice decimal.Decimal,
	isActive bool,
	createdAt time.Time,
	features []FeatureInclusion,
) *PricingOption {
	return &PricingOption{
		id:        id,
		name:      name,
		discount:  discount,
		basePrice: basePrice,
		isActive:  isActive,
		createdAt: createdAt,
		features:  features,
	}
}

func (p *PricingOption) ID() uint                  { return p.id }
func (p *PricingOption) Name() string              { return p.name }
func (p *PricingOption) Discount() decimal.Decimal { return p.discount }
func (p *PricingOption) BasePrice() decimal.Decimal {
	return p.basePrice
}
func (p *PricingOption) IsActive() bool       { return p.isActive }
func (p *PricingOption) CreatedAt() time.Time { return p.createdAt }

// Features returns the feature inclusion list of this plan.
func (p *PricingOption) Features() []FeatureInclusion {
	out := make([]FeatureInclusion, len(p.features))
	copy(out, p.features)
	return out
}

// IncludedFeatureNames returns the names of features this plan includes.
func (p *PricingOption) IncludedFeatureNames() []string {
	var names []string
	for _, fi := range p.features {
		if fi.Included {
			names = append(names, fi.FeatureName)
		}
	}
	return names
}

// DiscountedPrice derives the effective plan price:
// base_price * (1 - discount/100). The result is never negative and never
// exceeds the base price because the discount is bounded at construction.
func (p *PricingOption) DiscountedPrice() decimal.Decimal {
	if p.discount.IsZero() {
		return p.basePrice
	}
	factor := decimal.NewFromInt(1).Sub(p.discount.Div(decimalHundred))
	return p.basePrice.Mul(factor).Round(2)
}

// SetID assigns the persistence identity after insert.
func (p *PricingOption) SetID(id uint) {
	p.id = id
}

func (p *PricingOption) addInclusion(fi FeatureInclusion) {
	p.features = append(p.features, fi)
}
