package handlers

import (
	"context"

	"quotecraft/internal/application/contact/usecases"
)

// Use case interfaces for ContactHandler and WebhookHandler

type searchContactsUseCase interface {
	Execute(ctx context.Context, q usecases.SearchContactsQuery) (*usecases.SearchContactsResult, error)
}

type validateLocationUseCase interface {
	Execute(ctx context.Context, locationID string) error
}

type processWebhookUseCase interface {
	Execute(ctx context.Context, payload []byte) (*usecases.ProcessWebhookResult, error)
}
