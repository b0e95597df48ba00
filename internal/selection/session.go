package selection

import (
	"context"
	"sync"

	"packport/internal/catalog/models"
	"packport/internal/catalog/store"
	id "packport/pkg/domain"
)

// Session serializes access to a State. Every method returns a snapshot of
// the state after the transition: the product slice is copied, so readers
// never observe a focus index and product list from different moments.
type Session struct {
	mu    sync.Mutex
	state State
}

func NewSession() *Session {
	return &Session{}
}

// AddNext appends the next catalog product and reports whether anything was
// added. Returns the resulting snapshot either way.
func (s *Session) AddNext(ctx context.Context, catalog store.Store) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, added, err := s.state.AddNext(ctx, catalog)
	if err != nil {
		return s.snapshotLocked(), false, err
	}
	s.state = next
	return s.snapshotLocked(), added, nil
}

func (s *Session) SetFocus(i int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.state.SetFocus(i)
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.state = next
	return s.snapshotLocked(), nil
}

func (s *Session) Remove(productID id.ProductID) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.state.Remove(productID)
	if err != nil {
		return s.snapshotLocked(), err
	}
	s.state = next
	return s.snapshotLocked(), nil
}

// Snapshot returns a consistent copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	products := make([]models.Product, len(s.state.Products))
	copy(products, s.state.Products)
	return State{Products: products, Focus: s.state.Focus}
}
