package services

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
	"github.com/custodia-labs/shellit/internal/logger"
)

// Ensure ServiceRegistry implements the interface.
var _ driving.ServiceRegistry = (*ServiceRegistry)(nil)

// ServiceRegistry owns shell services. It is the only component that
// destroys them.
//
// The registry's index is safe for concurrent use. Destroy delivers the
// service's Destroyed signal on the calling goroutine, so callers holding
// ServiceRefs must call it from the loop those refs live on.
type ServiceRegistry struct {
	mu       sync.RWMutex
	services map[string]*domain.Service
	order    []string
	log      logger.Logger
}

// NewServiceRegistry creates an empty registry.
func NewServiceRegistry() *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[string]*domain.Service),
		log:      logger.For("registry"),
	}
}

// Create registers a new service with a generated ID.
func (r *ServiceRegistry) Create(name string, runner domain.Runner) *domain.Service {
	svc := domain.NewService(uuid.New().String(), name, runner)

	r.mu.Lock()
	r.services[svc.ID] = svc
	r.order = append(r.order, svc.ID)
	r.mu.Unlock()

	r.log.Debug("created %s (%s)", svc.Name, svc.ID)
	return svc
}

// Get returns the service with the given ID.
func (r *ServiceRegistry) Get(id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	return svc, nil
}

// List returns live services in creation order.
func (r *ServiceRegistry) List() []*domain.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Service, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.services[id])
	}
	return result
}

// Destroy removes the service and destroys it outside the lock.
func (r *ServiceRegistry) Destroy(id string) error {
	r.mu.Lock()
	svc, ok := r.services[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	delete(r.services, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	r.log.Debug("destroying %s (%s)", svc.Name, svc.ID)
	svc.Destroy()
	return nil
}

// DestroyAll destroys every service, newest first.
func (r *ServiceRegistry) DestroyAll() {
	live := r.List()
	slices.Reverse(live)
	for _, svc := range live {
		_ = r.Destroy(svc.ID)
	}
}
