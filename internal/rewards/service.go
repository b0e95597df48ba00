// Package rewards records point-earning actions and summarizes the ledger.
package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"packport/internal/rewards/models"
	"packport/internal/rewards/store"
	dErrors "packport/pkg/domain-errors"
)

// Service applies the earn rules to the ledger.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService builds a rewards service. now may be nil and defaults to
// time.Now; tests supply a fixed clock.
func NewService(s store.Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: s, now: now}
}

// Record appends an earned-points entry for the action.
func (s *Service) Record(ctx context.Context, action models.Action) (models.LedgerEntry, error) {
	points, ok := action.Points()
	if !ok {
		return models.LedgerEntry{}, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("unknown rewards action %q", action))
	}
	entry := models.LedgerEntry{
		ID:     uuid.New(),
		Action: action,
		Label:  action.Label(),
		Points: points,
		At:     s.now(),
	}
	if err := s.store.Append(ctx, entry); err != nil {
		return models.LedgerEntry{}, fmt.Errorf("appending ledger entry: %w", err)
	}
	return entry, nil
}

// Summary aggregates the ledger: lifetime total, points earned in the last
// seven days, tickets the total could buy, and entries newest first.
func (s *Service) Summary(ctx context.Context) (models.Summary, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("listing ledger: %w", err)
	}

	weekStart := s.now().AddDate(0, 0, -7)
	summary := models.Summary{Entries: make([]models.LedgerEntry, 0, len(entries))}
	for _, e := range entries {
		summary.Total += e.Points
		if !e.At.Before(weekStart) {
			summary.WeekTotal += e.Points
		}
	}
	summary.Tickets = summary.Total / models.TicketCost

	// Newest first for the activity feed.
	for i := len(entries) - 1; i >= 0; i-- {
		summary.Entries = append(summary.Entries, entries[i])
	}
	return summary, nil
}
