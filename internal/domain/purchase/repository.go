package purchase

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository persists the purchase aggregate and its snapshot tree.
type Repository interface {
	// Create persists the purchase with its full snapshot tree. The caller
	// is expected to run it inside a transaction context so a failure on
	// any child row rolls back the whole purchase.
	Create(ctx context.Context, p *Purchase) error

	// GetByID loads the purchase with all snapshot children.
	GetByID(ctx context.Context, id uint) (*Purchase, error)

	// GetByPurchasedServiceID loads the purchase owning the given purchased
	// service snapshot.
	GetByPurchasedServiceID(ctx context.Context, purchasedServiceID uint) (*Purchase, error)

	// MarkSubmitted performs the draft-to-submitted transition as a
	// compare-and-set on is_submitted, guaranteeing exactly one caller
	// wins when finalizations race. It returns a conflict error when the
	// purchase was already submitted and a not-found error when the id
	// does not resolve.
	MarkSubmitted(ctx context.Context, id uint, signature string, totalAmount decimal.Decimal) error

	// SetSelectedPlan resolves a purchased service's selected plan to one
	// of its own plan snapshots.
	SetSelectedPlan(ctx context.Context, purchasedServiceID, planSnapshotID uint) error

	// DeletePurchasedService removes one snapshot line with its plan,
	// feature and answer children.
	DeletePurchasedService(ctx context.Context, purchasedServiceID uint) error
}
