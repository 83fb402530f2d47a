package usecases

import "context"

// CustomFieldUpdate sets one CRM contact custom field by its field id.
type CustomFieldUpdate struct {
	ID    string `json:"id"`
	Value any    `json:"field_value"`
}

// CRMGateway is the narrow slice of the CRM API the purchase flows touch:
// tagging a contact and writing its custom fields. Both are called after the
// local transaction commits and are best-effort.
type CRMGateway interface {
	AddTags(ctx context.Context, contactID string, tags ...string) error
	UpdateContactFields(ctx context.Context, contactID string, fields []CustomFieldUpdate) error
}
