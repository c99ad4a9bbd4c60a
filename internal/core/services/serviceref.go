package services

import (
	"weak"

	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
	"github.com/custodia-labs/shellit/internal/logger"
)

// Ensure ServiceRef implements the interface.
var _ driving.ServiceRef = (*ServiceRef)(nil)

// ServiceRef holds a weak reference to a service and notifies observers
// whenever the referenced service changes.
//
// The reference never keeps the service alive and never destroys it. When
// the owner destroys the referenced service, the reference clears itself
// and notifies observers inside the owner's Destroy call.
//
// Setting the service that is already referenced is a no-op and does not
// notify. ServiceRef is not safe for concurrent use; callers confine it to
// one event loop together with the services it references.
type ServiceRef struct {
	service weak.Pointer[domain.Service]
	// connection on service.Destroyed(); 0 when nothing is held.
	conn    uint64
	changed domain.Signal[*domain.Service]
	closed  bool
	log     logger.Logger
}

// NewServiceRef creates a reference to service, which may be nil.
// When parent is non-nil the reference is closed together with it.
// The initial value does not trigger a notification.
func NewServiceRef(service *domain.Service, parent *Scope) *ServiceRef {
	r := &ServiceRef{log: logger.For("serviceref")}
	if service != nil && !service.IsDestroyed() {
		r.attach(service)
	}
	if parent != nil {
		parent.Adopt(r)
	}
	return r
}

// Service returns the referenced service, or nil.
func (r *ServiceRef) Service() *domain.Service {
	return r.service.Value()
}

// SetService replaces the referenced service and notifies observers if it
// differs from the current one. A destroyed service is stored as nil.
func (r *ServiceRef) SetService(service *domain.Service) {
	if r.closed {
		return
	}
	if service != nil && service.IsDestroyed() {
		service = nil
	}

	current := r.service.Value()
	if current == service {
		if service == nil {
			// Drop a handle left behind by a collected service.
			r.reset()
		}
		return
	}

	r.detach(current)
	if service != nil {
		r.attach(service)
	}

	r.log.Debug("%s -> %s", current, service)
	r.changed.Emit(service)
}

// OnChanged registers fn to receive the new service on every change.
func (r *ServiceRef) OnChanged(fn func(*domain.Service)) func() {
	id := r.changed.Connect(fn)
	return func() {
		r.changed.Disconnect(id)
	}
}

// Close detaches from the current service without notifying and drops all
// observers. Closed references ignore SetService. Close is idempotent.
func (r *ServiceRef) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.detach(r.service.Value())
	r.changed.Reset()
	return nil
}

func (r *ServiceRef) attach(service *domain.Service) {
	r.service = weak.Make(service)
	r.conn = service.Destroyed().Connect(r.serviceDestroyed)
	service.Ref(r)
}

func (r *ServiceRef) detach(service *domain.Service) {
	if service != nil {
		service.Destroyed().Disconnect(r.conn)
		service.Unref(r)
	}
	r.reset()
}

func (r *ServiceRef) reset() {
	r.service = weak.Pointer[domain.Service]{}
	r.conn = 0
}

// serviceDestroyed runs inside the owner's Destroy call.
func (r *ServiceRef) serviceDestroyed(service *domain.Service) {
	if r.service.Value() != service {
		return
	}
	r.reset()
	r.log.Debug("%s destroyed while referenced", service)
	r.changed.Emit(nil)
}
