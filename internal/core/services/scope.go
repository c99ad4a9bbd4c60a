package services

import (
	"errors"
	"io"
)

// Scope owns the lifetime of references and other closers created for one
// UI element. Closing the scope closes its children in reverse order.
// Scope is not safe for concurrent use.
type Scope struct {
	children []io.Closer
	closed   bool
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Child creates a scope that is closed together with s.
func (s *Scope) Child() *Scope {
	child := NewScope()
	s.Adopt(child)
	return child
}

// Adopt makes c a child of s. Adopting into a closed scope closes c at once.
func (s *Scope) Adopt(c io.Closer) {
	if c == nil {
		return
	}
	if s.closed {
		_ = c.Close()
		return
	}
	s.children = append(s.children, c)
}

// Len returns the number of children.
func (s *Scope) Len() int {
	return len(s.children)
}

// Close closes all children, newest first, and joins their errors.
// Later calls do nothing.
func (s *Scope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for i := len(s.children) - 1; i >= 0; i-- {
		if err := s.children[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.children = nil
	return errors.Join(errs...)
}
