package usecases

import (
	"context"

	"quotecraft/internal/domain/crmauth"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

type ValidateLocationUseCase struct {
	credRepo crmauth.Repository
	logger   logger.Interface
}

func NewValidateLocationUseCase(credRepo crmauth.Repository, logger logger.Interface) *ValidateLocationUseCase {
	return &ValidateLocationUseCase{credRepo: credRepo, logger: logger}
}

// Execute checks a location id against the stored CRM credentials. The
// embedded quote frontend calls this on load to confirm it is talking to
// the installed location.
func (uc *ValidateLocationUseCase) Execute(ctx context.Context, locationID string) error {
	if locationID == "" {
		return errors.NewBadRequestError("location id is required")
	}

	cred, err := uc.credRepo.GetLatest(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load crm credentials", "error", err)
		return err
	}
	if cred.LocationID != locationID {
		uc.logger.Warnw("rejected unknown location id", "location_id", locationID)
		return errors.NewUnauthorizedError("unauthenticated location id")
	}
	return nil
}
