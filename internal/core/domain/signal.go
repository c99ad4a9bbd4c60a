package domain

// Signal is an ordered list of callbacks that receive a value of type T.
//
// A Signal is not safe for concurrent use. It is meant to be owned by a
// single event loop, and Emit delivers synchronously on the caller's
// goroutine in connection order.
type Signal[T any] struct {
	nextID uint64
	slots  []slot[T]
}

type slot[T any] struct {
	id uint64
	fn func(T)
}

// Connect registers fn and returns an id for Disconnect.
// A nil fn is ignored and yields id 0.
func (s *Signal[T]) Connect(fn func(T)) uint64 {
	if fn == nil {
		return 0
	}
	s.nextID++
	s.slots = append(s.slots, slot[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes the callback registered under id.
// Returns false if no such callback is connected.
func (s *Signal[T]) Disconnect(id uint64) bool {
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return true
		}
	}
	return false
}

// Emit calls every connected callback with v.
// Callbacks connected or disconnected during Emit take effect on the next Emit,
// except that a callback disconnected mid-emit is not called.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	snapshot := make([]slot[T], len(s.slots))
	copy(snapshot, s.slots)
	for _, sl := range snapshot {
		if !s.connected(sl.id) {
			continue
		}
		sl.fn(v)
	}
}

// Len returns the number of connected callbacks.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// Reset disconnects every callback.
func (s *Signal[T]) Reset() {
	s.slots = nil
}

func (s *Signal[T]) connected(id uint64) bool {
	for _, sl := range s.slots {
		if sl.id == id {
			return true
		}
	}
	return false
}
