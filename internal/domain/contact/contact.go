// Package contact holds the CRM contact read model. Contacts and their
// addresses mirror the external CRM directory and are written only by the
// webhook sync flow; the purchase flow reads them by external contact id.
package contact

import "time"

// Contact mirrors one CRM contact. ContactID is the external identity; the
// local row id is an implementation detail of persistence.
type Contact struct {
	ID           uint
	ContactID    string
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	DND          bool
	Country      string
	DateAdded    *time.Time
	Tags         []string
	CustomFields []CustomField
	LocationID   string
	Timestamp    *time.Time

	Addresses []Address
}

// CustomField is one arbitrary key/value pair synced from the CRM.
type CustomField struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// FullName joins the first and last name for display.
func (c *Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

// AddressByID returns the contact's address with the given local id, or nil.
func (c *Contact) AddressByID(id uint) *Address {
	for i := range c.Addresses {
		if c.Addresses[i].ID == id {
			return &c.Addresses[i]
		}
	}
	return nil
}
