// Package settings holds the process-wide global settings record. Exactly
// one row exists; the repository forces its primary key so concurrent
// writers can never fork the singleton.
package settings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// GlobalSettings is the singleton configuration read by quote display
// logic. MinimumPrice is the floor under any displayed quote total.
type GlobalSettings struct {
	MinimumPrice decimal.Decimal
}

// Default returns the settings used when no row exists yet.
func Default() *GlobalSettings {
	return &GlobalSettings{MinimumPrice: decimal.Zero}
}

// Validate rejects negative price floors.
func (g *GlobalSettings) Validate() error {
	if g.MinimumPrice.LessThan(decimal.Zero) {
		return fmt.Errorf("minimum price cannot be negative, got %s", g.MinimumPrice)
	}
	return nil
}

// Repository persists the singleton settings row.
type Repository interface {
	// Load returns the settings row, creating it with defaults when absent.
	Load(ctx context.Context) (*GlobalSettings, error)
	// Save writes the singleton row.
	Save(ctx context.Context, g *GlobalSettings) error
}
