// Package eco turns a product's five sustainability pillars into an
// aggregate score, a tier, and a per-pillar narrative. Everything here is
// pure: same pillars in, same result out, no I/O.
package eco

import (
	"fmt"
	"math"

	"packport/internal/catalog/models"
	dErrors "packport/pkg/domain-errors"
)

// Pillar names one of the five sustainability dimensions.
type Pillar string

const (
	PillarCO2           Pillar = "co2"
	PillarRecyclability Pillar = "recyclability"
	PillarAnimalWelfare Pillar = "animalWelfare"
	PillarLocalSourcing Pillar = "localSourcing"
	PillarPackaging     Pillar = "packaging"
)

// Pillars returns the five pillars in display order.
func Pillars() []Pillar {
	return []Pillar{PillarCO2, PillarRecyclability, PillarAnimalWelfare, PillarLocalSourcing, PillarPackaging}
}

// Label returns the display name for a pillar.
func (p Pillar) Label() string {
	switch p {
	case PillarCO2:
		return "CO₂"
	case PillarRecyclability:
		return "Recyclability"
	case PillarAnimalWelfare:
		return "Animal Welfare"
	case PillarLocalSourcing:
		return "Local Sourcing"
	case PillarPackaging:
		return "Packaging"
	}
	return string(p)
}

// Tier is the coarse classification of a score.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// TierOf classifies a score. Band lower bounds are inclusive: 80 is high,
// 60 is medium.
func TierOf(value int) Tier {
	switch {
	case value >= 80:
		return TierHigh
	case value >= 60:
		return TierMedium
	default:
		return TierLow
	}
}

// PillarScore is one pillar's scored and narrated result.
type PillarScore struct {
	Pillar   Pillar `json:"pillar"`
	Value    int    `json:"value"`
	Tier     Tier   `json:"tier"`
	Headline string `json:"headline"`
	Story    string `json:"story"`
	Badge    string `json:"badge"`
}

// Result is the full scoring output for one product.
type Result struct {
	Aggregate int                    `json:"aggregate"`
	Tier      Tier                   `json:"tier"`
	Pillars   map[Pillar]PillarScore `json:"pillars"`
}

// Score computes the aggregate (round of the unweighted mean), classifies it
// and every pillar, and attaches the narrative for each pillar. Pillar values
// outside [0,100] are rejected, never clamped.
func Score(s models.Sustainability) (Result, error) {
	values := pillarValues(s)
	for _, p := range Pillars() {
		if v := values[p]; v < 0 || v > 100 {
			return Result{}, dErrors.New(dErrors.CodeInvalidInput,
				fmt.Sprintf("pillar %s value %d outside [0,100]", p, v))
		}
	}

	result := Result{
		Aggregate: aggregate(s),
		Pillars:   make(map[Pillar]PillarScore, len(values)),
	}
	result.Tier = TierOf(result.Aggregate)

	for _, p := range Pillars() {
		v := values[p]
		tier := TierOf(v)
		n := narrativeFor(p, tier)
		result.Pillars[p] = PillarScore{
			Pillar:   p,
			Value:    v,
			Tier:     tier,
			Headline: headlineFor(p, v),
			Story:    n.story,
			Badge:    n.badge,
		}
	}
	return result, nil
}

// ScoreLabel renders the aggregate the way every view shows it ("87%").
// Values are trusted to be in range here; validation belongs to Score.
func ScoreLabel(s models.Sustainability) string {
	return fmt.Sprintf("%d%%", aggregate(s))
}

func aggregate(s models.Sustainability) int {
	sum := s.CO2 + s.Recyclability + s.AnimalWelfare + s.LocalSourcing + s.Packaging
	return int(math.Round(float64(sum) / 5))
}

func pillarValues(s models.Sustainability) map[Pillar]int {
	return map[Pillar]int{
		PillarCO2:           s.CO2,
		PillarRecyclability: s.Recyclability,
		PillarAnimalWelfare: s.AnimalWelfare,
		PillarLocalSourcing: s.LocalSourcing,
		PillarPackaging:     s.Packaging,
	}
}
