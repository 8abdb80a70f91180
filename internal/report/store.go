package report

import (
	"context"
	"errors"
	"sync/atomic"
)

// Store holds the current report once it has been built. The HTTP server
// reads from it; readiness reports false until the first Set.
type Store struct {
	current atomic.Pointer[Report]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Set publishes a built report.
func (s *Store) Set(r *Report) {
	s.current.Store(r)
}

// Get returns the current report, or false if none has been built yet.
func (s *Store) Get() (*Report, bool) {
	r := s.current.Load()
	return r, r != nil
}

// CheckReadiness returns nil once a report has been built.
func (s *Store) CheckReadiness(_ context.Context) error {
	if s.current.Load() == nil {
		return errors.New("report has not been built yet")
	}
	return nil
}
