package domain

// Runner is implemented by services that do work only while someone uses them.
// Start is called when the first consumer arrives and Stop when the last leaves.
type Runner interface {
	Start()
	Stop()
}

// Service is a shell service whose lifetime is managed by an owner.
// Identity is pointer identity; ID and Name are informational.
//
// Consumers register with Ref and Unref. This tracks use, not ownership:
// only the owner calls Destroy.
//
// A Service is not safe for concurrent use. Destroy delivers the Destroyed
// signal synchronously on the calling goroutine.
type Service struct {
	// ID is the unique identifier for the service.
	ID string

	// Name is the human-readable service name (e.g., "audio", "brightness").
	Name string

	runner    Runner
	consumers map[any]struct{}
	running   bool
	destroyed bool
	onDestroy Signal[*Service]
}

// NewService creates a service. runner may be nil.
func NewService(id, name string, runner Runner) *Service {
	return &Service{
		ID:        id,
		Name:      name,
		runner:    runner,
		consumers: make(map[any]struct{}),
	}
}

// Destroyed returns the signal emitted once when the service is destroyed.
func (s *Service) Destroyed() *Signal[*Service] {
	return &s.onDestroy
}

// IsDestroyed reports whether Destroy has been called.
func (s *Service) IsDestroyed() bool {
	return s.destroyed
}

// Destroy ends the service's life. It stops the runner if it is running,
// forgets all consumers, and emits Destroyed. Later calls do nothing.
func (s *Service) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.stop()
	clear(s.consumers)
	s.onDestroy.Emit(s)
	s.onDestroy.Reset()
}

// Ref registers consumer as a user of the service, starting it on the
// first registration. Registering the same consumer twice counts once.
// Ref on a destroyed service is a no-op.
func (s *Service) Ref(consumer any) {
	if s.destroyed || consumer == nil {
		return
	}
	if _, ok := s.consumers[consumer]; ok {
		return
	}
	s.consumers[consumer] = struct{}{}
	if len(s.consumers) == 1 {
		s.start()
	}
}

// Unref removes consumer, stopping the service when none remain.
func (s *Service) Unref(consumer any) {
	if _, ok := s.consumers[consumer]; !ok {
		return
	}
	delete(s.consumers, consumer)
	if len(s.consumers) == 0 {
		s.stop()
	}
}

// Consumers returns the number of registered consumers.
func (s *Service) Consumers() int {
	return len(s.consumers)
}

// Running reports whether the runner has been started and not stopped.
func (s *Service) Running() bool {
	return s.running
}

// String returns the display name, falling back to the ID.
func (s *Service) String() string {
	if s == nil {
		return "<none>"
	}
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

func (s *Service) start() {
	if s.running {
		return
	}
	s.running = true
	if s.runner != nil {
		s.runner.Start()
	}
}

func (s *Service) stop() {
	if !s.running {
		return
	}
	s.running = false
	if s.runner != nil {
		s.runner.Stop()
	}
}
