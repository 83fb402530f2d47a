package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Feature is a capability of a service that pricing options can include or
// exclude. Feature names are unique within their service.
type Feature struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
}

// NewFeature creates a feature. Uniqueness within the owning service is
// enforced by Service.AddFeature.
func NewFeature(name, description string) (*Feature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("feature name is required")
	}
	return &Feature{
		name:        name,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructFeature rebuilds a feature from persistence.
func ReconstructFeature(id uint, name, description string, createdAt time.Time) *Feature {
	return &Feature{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
	}
}

func (f *Feature) ID() uint            { return f.id }
func (f *Feature) Name() string        { return f.name }
func (f *Feature) Description() string { return f.description }
func (f *Feature) CreatedAt() time.Time {
	return f.createdAt
}

// SetID assigns the persistence identity after insert.
func (f *Feature) SetID(id uint) {
	f.id = id
}
