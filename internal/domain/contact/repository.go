package contact

import "context"

// SearchQuery is a keyword contact search: every keyword matches any of
// first name, last name, email, phone or country.
type SearchQuery struct {
	Keywords []string
	Page     int
	PageSize int
}

// Repository persists the CRM contact mirror.
type Repository interface {
	// Upsert creates or updates a contact keyed by its external contact id.
	Upsert(ctx context.Context, c *Contact) error
	GetByContactID(ctx context.Context, contactID string) (*Contact, error)
	// DeleteByContactID removes a contact and its addresses; deleting an
	// unknown contact is not an error, mirroring CRM delete events that
	// may arrive more than once.
	DeleteByContactID(ctx context.Context, contactID string) error
	Search(ctx context.Context, q SearchQuery) ([]*Contact, int64, error)
	ReplaceAddresses(ctx context.Context, contactID string, addresses []Address) error
}
