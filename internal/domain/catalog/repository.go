package catalog

import "context"

// ServiceRepository persists the catalog aggregate. Cascades from a service
// to its features, pricing options and questions are a repository concern;
// deleting a service must never touch purchase snapshots.
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	// Update replaces the service row and its full nested children set in
	// one transaction.
	Update(ctx context.Context, service *Service) error
	GetByID(ctx context.Context, id uint) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
	ListActive(ctx context.Context) ([]*Service, error)
	Delete(ctx context.Context, id uint) error
	UpdateActive(ctx context.Context, id uint, isActive bool) error
}
