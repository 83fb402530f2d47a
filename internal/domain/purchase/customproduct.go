package purchase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomProduct is a purchase line item that does not correspond to any
// catalog service: an ad-hoc name, description and price attached directly
// to the purchase.
type CustomProduct struct {
	id          uint
	name        string
	description string
	price       decimal.Decimal
}

// NewCustomProduct creates an ad-hoc line item.
func NewCustomProduct(name, description string, price decimal.Decimal) (*CustomProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("custom product name is required")
	}
	if price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("custom product price cannot be negative, got %s", price)
	}
	return &CustomProduct{
		name:        name,
		description: description,
		price:       price,
	}, nil
}

// ReconstructCustomProduct rebuilds a custom product from persistence.
func ReconstructCustomProduct(id uint, name, description string, price decimal.Decimal) *CustomProduct {
	return &CustomProduct{id: id, name: name, description: description, price: price}
}

func (cp *CustomProduct) ID() uint                { return cp.id }
func (cp *CustomProduct) Name() string            { return cp.name }
func (cp *CustomProduct) Description() string     { return cp.description }
func (cp *CustomProduct) Price() decimal.Decimal  { return cp.price }

// SetID assigns the persistence identity after insert.
func (cp *CustomProduct) SetID(id uint) { cp.id = id }
