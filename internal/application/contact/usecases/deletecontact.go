package usecases

import (
	"context"
	"fmt"

	"quotecraft/internal/domain/contact"
	"quotecraft/internal/shared/logger"
)

type DeleteContactUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewDeleteContactUseCase(repo contact.Repository, logger logger.Interface) *DeleteContactUseCase {
	return &DeleteContactUseCase{repo: repo, logger: logger}
}

// Execute removes the mirrored contact and its addresses. CRM delete events
// can arrive more than once, so deleting an unknown contact succeeds.
func (uc *DeleteContactUseCase) Execute(ctx context.Context, contactID string) error {
	if err := uc.repo.DeleteByContactID(ctx, contactID); err != nil {
		uc.logger.Errorw("failed to delete contact", "error", err, "contact_id", contactID)
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	uc.logger.Infow("contact deleted", "contact_id", contactID)
	return nil
}
