package driving

import "github.com/custodia-labs/shellit/internal/core/domain"

// ServiceRegistry owns shell services and controls their lifetime.
type ServiceRegistry interface {
	// Create registers a new service. runner may be nil.
	Create(name string, runner domain.Runner) *domain.Service

	// Get returns the service with the given ID.
	// Returns domain.ErrNotFound if absent.
	Get(id string) (*domain.Service, error)

	// List returns live services in creation order.
	List() []*domain.Service

	// Destroy removes and destroys a service, clearing every reference to it.
	// Returns domain.ErrNotFound if absent.
	Destroy(id string) error
}
