// Package domain holds the typed identifiers shared across modules. Distinct
// types keep a product ID from ever being passed where a session ID belongs.
package domain

import "github.com/google/uuid"

// ProductID identifies a catalog product. Catalog IDs are human-readable
// slugs authored with the seed data (e.g. "milk-001"), not UUIDs.
type ProductID string

func (id ProductID) String() string { return string(id) }

// SessionID identifies an authenticated app session.
type SessionID = uuid.UUID

// LedgerEntryID identifies a single rewards ledger entry.
type LedgerEntryID = uuid.UUID
