// Package store holds the rewards ledger. Entries are append-only.
package store

import (
	"context"
	"sync"

	"packport/internal/rewards/models"
)

type Store interface {
	// Append adds an entry to the ledger.
	Append(ctx context.Context, entry models.LedgerEntry) error
	// List returns all entries in append order.
	List(ctx context.Context) ([]models.LedgerEntry, error)
}

// InMemory is a mutex-guarded in-process ledger.
type InMemory struct {
	mu      sync.Mutex
	entries []models.LedgerEntry
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Append(_ context.Context, entry models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *InMemory) List(_ context.Context) ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LedgerEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
