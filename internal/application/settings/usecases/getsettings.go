package usecases

import (
	"context"
	"fmt"

	"quotecraft/internal/domain/settings"
	"quotecraft/internal/shared/logger"
)

type GetSettingsUseCase struct {
	repo   settings.Repository
	cache  Cache
	logger logger.Interface
}

func NewGetSettingsUseCase(repo settings.Repository, cache Cache, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{repo: repo, cache: cache, logger: logger}
}

// Execute returns the global settings, serving from cache when possible. A
// cache failure degrades to a database read rather than failing the request.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*settings.GlobalSettings, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warnw("settings cache read failed, falling back to database", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	loaded, err := uc.repo.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, loaded); err != nil {
			uc.logger.Warnw("failed to populate settings cache", "error", err)
		}
	}
	return loaded, nil
}
