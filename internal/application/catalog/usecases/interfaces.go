package usecases

import (
	"context"

	"github.com/shopspring/decimal"
)

// MinimumPriceWriter updates the global minimum price. The catalog editor
// submits it together with batch service creation, so the create flow needs
// a handle on the settings write path without owning it.
type MinimumPriceWriter interface {
	UpdateMinimumPrice(ctx context.Context, price decimal.Decimal) error
}
