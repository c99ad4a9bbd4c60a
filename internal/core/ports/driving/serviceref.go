package driving

import "github.com/custodia-labs/shellit/internal/core/domain"

// ServiceRef is a nullable, non-owning reference to a service with a
// change notification. It is the "current service" property a UI binds to.
type ServiceRef interface {
	// Service returns the referenced service, or nil.
	// Never returns a destroyed service.
	Service() *domain.Service

	// SetService replaces the reference. Observers are notified
	// synchronously when the value changes by identity.
	SetService(service *domain.Service)

	// OnChanged registers fn to receive the new value on every change.
	// The returned function disconnects it.
	OnChanged(fn func(*domain.Service)) (disconnect func())

	// Close detaches from the current service and drops all observers.
	Close() error
}
