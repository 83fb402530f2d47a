package contact

import "fmt"

// PropertyType classifies an address for quoting purposes.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
)

// ParsePropertyType validates a raw property type string. Empty input is
// allowed; the CRM does not always know the property type.
func ParsePropertyType(raw string) (PropertyType, error) {
	switch PropertyType(raw) {
	case "", PropertyTypeResidential, PropertyTypeCommercial:
		return PropertyType(raw), nil
	}
	return "", fmt.Errorf("invalid property type: %s", raw)
}

// Address is one named location of a contact (home, office) with the
// structured fields quote pricing depends on.
type Address struct {
	ID             uint
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
	PropertyType   PropertyType
}
