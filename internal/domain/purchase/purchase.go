package purchase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"quotecraft/internal/shared/errors"
)

// Purchase is the quote aggregate root. It references a CRM contact by
// external id, optionally one of the contact's addresses, and owns the
// frozen service snapshots and ad-hoc line items created with it. A
// purchase moves through exactly two states: draft (is_submitted false) and
// submitted; the transition is one-way.
type Purchase struct {
	id          uint
	contactID   string
	addressID   *uint
	totalAmount decimal.Decimal
	isSubmitted bool
	signature   *string
	createdAt   time.Time

	services       []*PurchasedService
	customProducts []*CustomProduct
}

// NewPurchase creates a draft purchase. The snapshot children are attached
// by the builder before the whole tree is persisted in one transaction.
func NewPurchase(contactID string, addressID *uint, totalAmount decimal.Decimal) (*Purchase, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, fmt.Errorf("contact id is required")
	}
	if totalAmount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("total amount cannot be negative, got %s", totalAmount)
	}
	return &Purchase{
		contactID:   contactID,
		addressID:   addressID,
		totalAmount: totalAmount,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructPurchase rebuilds a purchase from persistence.
func ReconstructPurchase(
	id uint,
	contactID string,
	addressID *uint,
	totalAmount decimal.Decimal,
	isSubmitted bool,
	signature *string,
	createdAt time.Time,
	services []*PurchasedService,
	customProducts []*CustomProduct,
) (*Purchase, error) {
	if id == 0 {
		return nil, fmt.Errorf("purchase ID cannot be zero")
	}
	return &Purchase{
		id:             id,
		contactID:      contactID,
		addressID:      addressID,
		totalAmount:    totalAmount,
		isSubmitted:    isSubmitted,
		signature:      signature,
		createdAt:      createdAt,
		services:       services,
		customProducts: customProducts,
	}, nil
}

func (p *Purchase) ID() uint          { return p.id }
func (p *Purchase) ContactID() string { return p.contactID }
func (p *Purchase) AddressID() *uint  { return p.addressID }
func (p *Purchase) TotalAmount() decimal.Decimal {
	return p.totalAmount
}
func (p *Purchase) IsSubmitted() bool    { return p.isSubmitted }
func (p *Purchase) Signature() *string   { return p.signature }
func (p *Purchase) CreatedAt() time.Time { return p.createdAt }

func (p *Purchase) Services() []*PurchasedService {
	out := make([]*PurchasedService, len(p.services))
	copy(out, p.services)
	return out
}

func (p *Purchase) CustomProducts() []*CustomProduct {
	out := make([]*CustomProduct, len(p.customProducts))
	copy(out, p.customProducts)
	return out
}

// ServiceByID resolves one of this purchase's own service snapshots.
func (p *Purchase) ServiceByID(id uint) *PurchasedService {
	for _, ps := range p.services {
		if ps.ID() == id {
			return ps
		}
	}
	return nil
}

// AddService attaches a purchased-service snapshot.
func (p *Purchase) AddService(ps *PurchasedService) {
	p.services = append(p.services, ps)
}

// AddCustomProduct attaches an ad-hoc line item.
func (p *Purchase) AddCustomProduct(cp *CustomProduct) {
	p.customProducts = append(p.customProducts, cp)
}

// Validate checks the invariants a draft purchase must satisfy before it is
// persisted: an empty quote with neither services nor custom products is
// rejected.
func (p *Purchase) Validate() error {
	if len(p.services) == 0 && len(p.customProducts) == 0 {
		return errors.NewValidationError("purchase requires at least one service or custom product")
	}
	return nil
}

// Finalize performs the one-way draft to submitted transition, recording
// the customer signature and the final total. A second finalize attempt is
// a conflict; there is no un-submit.
func (p *Purchase) Finalize(signature string, totalAmount decimal.Decimal) error {
	if p.isSubmitted {
		return errors.NewConflictError("purchase already submitted")
	}
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return errors.NewValidationError("signature is required")
	}
	if totalAmount.LessThan(decimal.Zero) {
		return errors.NewValidationError("total amount cannot be negative")
	}
	p.isSubmitted = true
	p.signature = &signature
	p.totalAmount = totalAmount
	return nil
}

// RemoveService detaches one purchased-service snapshot by id. Removal is
// permitted regardless of submission state, matching the observed behavior
// of the quote editor.
func (p *Purchase) RemoveService(id uint) error {
	for i, ps := range p.services {
		if ps.ID() == id {
			p.services = append(p.services[:i], p.services[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("purchased service not found")
}

// SetID assigns the persistence identity after insert.
func (p *Purchase) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("purchase ID already set")
	}
	p.id = id
	return nil
}
