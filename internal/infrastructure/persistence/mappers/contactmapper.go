package mappers

import (
	"encoding/json"
	"fmt"

	"quotecraft/internal/domain/contact"
	"quotecraft/internal/infrastructure/persistence/models"
)

// ContactMapper converts between the contact read model and its persistence
// shape. Tags and custom fields round-trip through JSON columns.
type ContactMapper interface {
	ToEntity(model *models.ContactModel) (*contact.Contact, error)
	ToEntities(models []*models.ContactModel) ([]*contact.Contact, error)
	ToModel(entity *contact.Contact) (*models.ContactModel, error)
	AddressToModel(contactRowID uint, a contact.Address) models.AddressModel
}

type contactMapper struct{}

func NewContactMapper() ContactMapper {
	return &contactMapper{}
}

func (m *contactMapper) ToEntity(model *models.ContactModel) (*contact.Contact, error) {
	if model == nil {
		return nil, nil
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contact tags: %w", err)
		}
	}

	var customFields []contact.CustomField
	if len(model.CustomFields) > 0 {
		if err := json.Unmarshal(model.CustomFields, &customFields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contact custom fields: %w", err)
		}
	}

	addresses := make([]contact.Address, 0, len(model.Addresses))
	for _, am := range model.Addresses {
		propType, err := contact.ParsePropertyType(am.PropertyType)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", am.ID, err)
		}
		addresses = append(addresses, contact.Address{
			ID:             am.ID,
			AddressID:      am.ExternalID,
			Name:           am.Name,
			Order:          am.DisplayOrder,
			StreetAddress:  am.StreetAddress,
			City:           am.City,
			State:          am.State,
			PostalCode:     am.PostalCode,
			GateCode:       am.GateCode,
			NumberOfFloors: am.NumberOfFloors,
			PropertySqft:   am.PropertySqft,
			PropertyType:   propType,
		})
	}

	return &contact.Contact{
		ID:           model.ID,
		ContactID:    model.ContactID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Phone:        model.Phone,
		Email:        model.Email,
		DND:          model.DND,
		Country:      model.Country,
		DateAdded:    model.DateAdded,
		Tags:         tags,
		CustomFields: customFields,
		LocationID:   model.LocationID,
		Timestamp:    model.Timestamp,
		Addresses:    addresses,
	}, nil
}

func (m *contactMapper) ToEntities(contactModels []*models.ContactModel) ([]*contact.Contact, error) {
	entities := make([]*contact.Contact, 0, len(contactModels))
	for _, cm := range contactModels {
		entity, err := m.ToEntity(cm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *contactMapper) ToModel(entity *contact.Contact) (*models.ContactModel, error) {
	tags, err := json.Marshal(entity.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact tags: %w", err)
	}
	customFields, err := json.Marshal(entity.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact custom fields: %w", err)
	}

	return &models.ContactModel{
		ID:           entity.ID,
		ContactID:    entity.ContactID,
		FirstName:    entity.FirstName,
		LastName:     entity.LastName,
		Phone:        entity.Phone,
		Email:        entity.Email,
		DND:          entity.DND,
		Country:      entity.Country,
		DateAdded:    entity.DateAdded,
		Tags:         tags,
		CustomFields: customFields,
		LocationID:   entity.LocationID,
		Timestamp:    entity.Timestamp,
	}, nil
}

func (m *contactMapper) AddressToModel(contactRowID uint, a contact.Address) models.AddressModel {
	return models.AddressModel{
		ID:             a.ID,
		ContactID:      contactRowID,
		ExternalID:     a.AddressID,
		Name:           a.Name,
		DisplayOrder:   a.Order,
		StreetAddress:  a.StreetAddress,
		City:           a.City,
		State:          a.State,
		PostalCode:     a.PostalCode,
		GateCode:       a.GateCode,
		NumberOfFloors: a.NumberOfFloors,
		PropertySqft:   a.PropertySqft,
		PropertyType:   string(a.PropertyType),
	}
}
