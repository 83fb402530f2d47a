package usecases

import (
	"context"

	"quotecraft/internal/domain/settings"
)

// Cache is the read-through cache in front of the settings row. Get returns
// a miss as a nil settings pointer with a nil error.
type Cache interface {
	Get(ctx context.Context) (*settings.GlobalSettings, error)
	Set(ctx context.Context, g *settings.GlobalSettings) error
	Invalidate(ctx context.Context) error
}
