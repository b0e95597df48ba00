// Package models defines the product passport entities. A Product is
// immutable once constructed: nothing in the core mutates a record after the
// catalog is seeded.
package models

import (
	"time"

	id "packport/pkg/domain"
)

// Status is the authored lifecycle state of a pack. It is stored as given
// with the seed data and never derived from the expiry date.
type Status string

const (
	StatusFresh    Status = "fresh"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusConsumed Status = "consumed"
	StatusRecycled Status = "recycled"
)

// Valid reports whether s is one of the closed set of statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusFresh, StatusExpiring, StatusExpired, StatusConsumed, StatusRecycled:
		return true
	}
	return false
}

// Label returns the display text shown on product cards.
func (s Status) Label() string {
	switch s {
	case StatusFresh:
		return "🟢 Fresh"
	case StatusExpiring:
		return "🟡 Expires soon"
	case StatusExpired:
		return "🔴 Expired"
	case StatusConsumed:
		return "✅ Consumed"
	case StatusRecycled:
		return "♻️ Recycled"
	}
	return string(s)
}

// Origin is where a product was made. Plain strings, non-empty by seed contract.
type Origin struct {
	Country  string `yaml:"country" json:"country"`
	Region   string `yaml:"region" json:"region"`
	Producer string `yaml:"producer" json:"producer"`
}

// Nutrition holds the labeled quantities from the pack, kept as authored
// display strings ("3.6g", "272 kJ") since the app never computes with them.
type Nutrition struct {
	Energy       string `yaml:"energy" json:"energy"`
	Fat          string `yaml:"fat" json:"fat"`
	SaturatedFat string `yaml:"saturatedFat" json:"saturated_fat"`
	Sugar        string `yaml:"sugar" json:"sugar"`
	Protein      string `yaml:"protein" json:"protein"`
	Salt         string `yaml:"salt" json:"salt"`
}

// Sustainability carries the five pillar scores, each an integer in [0,100].
type Sustainability struct {
	CO2           int `yaml:"co2" json:"co2"`
	Recyclability int `yaml:"recyclability" json:"recyclability"`
	AnimalWelfare int `yaml:"animalWelfare" json:"animal_welfare"`
	LocalSourcing int `yaml:"localSourcing" json:"local_sourcing"`
	Packaging     int `yaml:"packaging" json:"packaging"`
}

// JourneyStep is one stop on the traceability timeline. Steps are causally
// ordered; Completed is authoritative for whether a step has happened (dates
// are display data and may be absent).
type JourneyStep struct {
	Label     string     `yaml:"label" json:"label"`
	Detail    string     `yaml:"detail" json:"detail"`
	Date      *time.Time `yaml:"date,omitempty" json:"date,omitempty"`
	Completed bool       `yaml:"completed" json:"completed"`
}

// Review is a single community review of a product.
type Review struct {
	ID       string    `yaml:"id" json:"id"`
	User     string    `yaml:"user" json:"user"`
	Avatar   string    `yaml:"avatar" json:"avatar"`
	Rating   int       `yaml:"rating" json:"rating"`
	Text     string    `yaml:"text" json:"text"`
	Date     time.Time `yaml:"date" json:"date"`
	Category string    `yaml:"category" json:"category"`
}

// Product is a full product passport record.
type Product struct {
	ID             id.ProductID   `yaml:"id" json:"id"`
	Name           string         `yaml:"name" json:"name"`
	Brand          string         `yaml:"brand" json:"brand"`
	Volume         string         `yaml:"volume" json:"volume"`
	Image          string         `yaml:"image" json:"image"`
	Origin         Origin         `yaml:"origin" json:"origin"`
	Expiry         time.Time      `yaml:"expiry" json:"expiry"`
	Status         Status         `yaml:"status" json:"status"`
	Organic        bool           `yaml:"organic" json:"organic"`
	Certifications []string       `yaml:"certifications" json:"certifications"`
	Nutrition      Nutrition      `yaml:"nutrition" json:"nutrition"`
	Ingredients    string         `yaml:"ingredients" json:"ingredients"`
	Allergens      []string       `yaml:"allergens" json:"allergens"`
	Sustainability Sustainability `yaml:"sustainability" json:"sustainability"`
	Batch          string         `yaml:"batch" json:"batch"`
	Serial         string         `yaml:"serial" json:"serial"`
	Journey        []JourneyStep  `yaml:"journey" json:"journey"`
	Reviews        []Review       `yaml:"reviews" json:"reviews"`
}
