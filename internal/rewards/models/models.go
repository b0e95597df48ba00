// Package models defines the rewards ledger entities and the fixed earn
// rules.
package models

import (
	"time"

	id "packport/pkg/domain"
)

// Action is a point-earning sustainable action.
type Action string

const (
	ActionScan     Action = "scan"
	ActionRecycle  Action = "recycle"
	ActionReview   Action = "review"
	ActionReferral Action = "referral"
)

// TicketCost is how many points one lottery ticket costs.
const TicketCost = 40

// points per action, fixed product rules
var earnRules = map[Action]int{
	ActionScan:     10,
	ActionRecycle:  20,
	ActionReview:   15,
	ActionReferral: 50,
}

var actionLabels = map[Action]string{
	ActionScan:     "Scanned a product",
	ActionRecycle:  "Recycled Tetra Pak",
	ActionReview:   "Left a review",
	ActionReferral: "Referred a friend",
}

// Points returns the earn value for the action and whether the action is
// one of the closed set.
func (a Action) Points() (int, bool) {
	p, ok := earnRules[a]
	return p, ok
}

// Label returns the activity feed text for the action.
func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return string(a)
}

// LedgerEntry is one earned-points record.
type LedgerEntry struct {
	ID     id.LedgerEntryID `json:"id"`
	Action Action           `json:"action"`
	Label  string           `json:"label"`
	Points int              `json:"points"`
	At     time.Time        `json:"at"`
}

// Summary is the aggregate rewards view.
type Summary struct {
	Total     int           `json:"total"`
	WeekTotal int           `json:"weekTotal"`
	Tickets   int           `json:"tickets"`
	Entries   []LedgerEntry `json:"entries"`
}
