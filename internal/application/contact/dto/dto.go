package dto

import (
	"time"

	"quotecraft/internal/domain/contact"
)

type ContactDTO struct {
	ID           uint                  `json:"id"`
	ContactID    string                `json:"contact_id"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	FullName     string                `json:"full_name"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email"`
	DND          bool                  `json:"dnd"`
	Country      string                `json:"country"`
	DateAdded    *time.Time            `json:"date_added,omitempty"`
	Tags         []string              `json:"tags"`
	CustomFields []contact.CustomField `json:"custom_fields"`
	LocationID   string                `json:"location_id"`
	Addresses    []AddressDTO          `json:"addresses"`
}

type AddressDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Order          int    `json:"order"`
	StreetAddress  string `json:"street_address"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
	GateCode       string `json:"gate_code"`
	NumberOfFloors *int   `json:"number_of_floors,omitempty"`
	PropertySqft   *int   `json:"property_sqft,omitempty"`
	PropertyType   string `json:"property_type"`
}

// ToContactDTO converts the contact read model to its response shape.
func ToContactDTO(c *contact.Contact) *ContactDTO {
	if c == nil {
		return nil
	}
	out := &ContactDTO{
		ID:           c.ID,
		ContactID:    c.ContactID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		FullName:     c.FullName(),
		Phone:        c.Phone,
		Email:        c.Email,
		DND:          c.DND,
		Country:      c.Country,
		DateAdded:    c.DateAdded,
		Tags:         c.Tags,
		CustomFields: c.CustomFields,
		LocationID:   c.LocationID,
		Addresses:    make([]AddressDTO, 0, len(c.Addresses)),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.CustomFields == nil {
		out.CustomFields = []contact.CustomField{}
	}
	for _, a := range c.Addresses {
		out.Addresses = append(out.Addresses, AddressDTO{
			ID:             a.ID,
			Name:           a.Name,
			Order:          a.Order,
			StreetAddress:  a.StreetAddress,
			City:           a.City,
			State:          a.State,
			PostalCode:     a.PostalCode,
			GateCode:       a.GateCode,
			NumberOfFloors: a.NumberOfFloors,
			PropertySqft:   a.PropertySqft,
			PropertyType:   string(a.PropertyType),
		})
	}
	return out
}

// ToContactDTOList batch converts contacts.
func ToContactDTOList(contacts []*contact.Contact) []*ContactDTO {
	dtos := make([]*ContactDTO, 0, len(contacts))
	for _, c := range contacts {
		dtos = append(dtos, ToContactDTO(c))
	}
	return dtos
}
