package usecases

import (
	"context"
	"fmt"
	"time"

	"quotecraft/internal/domain/contact"
	"quotecraft/internal/shared/errors"
	"quotecraft/internal/shared/logger"
)

// SyncContactCommand mirrors the fields of a CRM contact event. Addresses
// are optional; when present they replace the contact's stored set.
type SyncContactCommand struct {
	ContactID    string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DND          bool
	Country      string
	DateAdded    *time.Time
	Tags         []string
	CustomFields []contact.CustomField
	LocationID   string
	Addresses    []AddressInput
}

type AddressInput struct {
	AddressID      string
	Name           string
	Order          int
	StreetAddress  string
	City           string
	State          string
	PostalCode     string
	GateCode       string
	NumberOfFloors *int
	PropertySqft   *int
	PropertyType   string
}

type SyncContactUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewSyncContactUseCase(repo contact.Repository, logger logger.Interface) *SyncContactUseCase {
	return &SyncContactUseCase{repo: repo, logger: logger}
}

// Execute upserts the contact mirror row keyed by the external contact id.
// Sync is the only writer of the contact directory.
func (uc *SyncContactUseCase) Execute(ctx context.Context, cmd SyncContactCommand) error {
	if cmd.ContactID == "" {
		return errors.NewValidationError("contact id is required")
	}

	now := time.Now()
	c := &contact.Contact{
		ContactID:    cmd.ContactID,
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		DND:          cmd.DND,
		Country:      cmd.Country,
		DateAdded:    cmd.DateAdded,
		Tags:         cmd.Tags,
		CustomFields: cmd.CustomFields,
		LocationID:   cmd.LocationID,
		Timestamp:    &now,
	}

	if err := uc.repo.Upsert(ctx, c); err != nil {
		uc.logger.Errorw("failed to upsert contact", "error", err, "contact_id", cmd.ContactID)
		return fmt.Errorf("failed to upsert contact: %w", err)
	}

	if len(cmd.Addresses) > 0 {
		addresses := make([]contact.Address, 0, len(cmd.Addresses))
		for _, in := range cmd.Addresses {
			propType, err := contact.ParsePropertyType(in.PropertyType)
			if err != nil {
				uc.logger.Warnw("skipping address with invalid property type",
					"contact_id", cmd.ContactID, "property_type", in.PropertyType)
				continue
			}
			addresses = append(addresses, contact.Address{
				AddressID:      in.AddressID,
				Name:           in.Name,
				Order:          in.Order,
				StreetAddress:  in.StreetAddress,
				City:           in.City,
				State:          in.State,
				PostalCode:     in.PostalCode,
				GateCode:       in.GateCode,
				NumberOfFloors: in.NumberOfFloors,
				PropertySqft:   in.PropertySqft,
				PropertyType:   propType,
			})
		}
		if err := uc.repo.ReplaceAddresses(ctx, cmd.ContactID, addresses); err != nil {
			uc.logger.Errorw("failed to replace contact addresses", "error", err, "contact_id", cmd.ContactID)
			return fmt.Errorf("failed to replace contact addresses: %w", err)
		}
	}

	uc.logger.Infow("contact synced", "contact_id", cmd.ContactID)
	return nil
}
