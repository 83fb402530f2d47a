package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"quotecraft/internal/domain/settings"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type UpdateSettingsCommand struct {
	MinimumPrice decimal.Decimal
}

type UpdateSettingsUseCase struct {
	repo   settings.Repository
	cache  Cache
	logger logger.Interface
}

func NewUpdateSettingsUseCase(repo settings.Repository, cache Cache, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{repo: repo, cache: cache, logger: logger}
}

// Execute writes the singleton settings row and invalidates the cache so the
// next read observes the new floor.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*settings.GlobalSettings, error) {
	g := &settings.GlobalSettings{MinimumPrice: cmd.MinimumPrice}
	if err := g.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, g); err != nil {
		uc.logger.Errorw("failed to save settings", "error", err)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warnw("failed to invalidate settings cache", "error", err)
		}
	}

	uc.logger.Infow("global settings updated", "minimum_price", cmd.MinimumPrice)
	return g, nil
}

// UpdateMinimumPrice lets other flows piggyback a settings write, keeping
// cache invalidation in one place.
func (uc *UpdateSettingsUseCase) UpdateMinimumPrice(ctx context.Context, price decimal.Decimal) error {
	_, err := uc.Execute(ctx, UpdateSettingsCommand{MinimumPrice: price})
	return err
}
