package eco

import "fmt"

// The narrative layer is a dispatch table keyed by (pillar, tier) so new
// pillars or tiers stay additive. Headlines are flavor pseudo-metrics: fixed
// linear transforms of the raw value, deterministic and not scientifically
// normative.

type narrative struct {
	badge string
	story string
}

// headlineFor derives the pillar's headline pseudo-metric from the raw value.
func headlineFor(p Pillar, value int) string {
	switch p {
	case PillarCO2:
		// 4g CO2e avoided per litre per point.
		return fmt.Sprintf("Avoids %dg CO₂e per litre versus the category average", value*4)
	case PillarRecyclability:
		return fmt.Sprintf("%d%% of this pack can be recycled", value)
	case PillarAnimalWelfare:
		stars := 1 + value/25
		if stars > 5 {
			stars = 5
		}
		return fmt.Sprintf("%d/5 welfare rating across the supply chain", stars)
	case PillarLocalSourcing:
		// 2000km at score 0, shrinking 18km per point.
		return fmt.Sprintf("Ingredients travel roughly %dkm to reach the shelf", 2000-18*value)
	case PillarPackaging:
		return fmt.Sprintf("%d%% renewable material in the packaging", value*9/10)
	}
	return fmt.Sprintf("Scored %d out of 100", value)
}

var narratives = map[Pillar]map[Tier]narrative{
	PillarCO2: {
		TierHigh: {
			badge: "Climate Leader",
			story: "Production and transport run on a largely decarbonised chain, from farm equipment to the filling plant. The remaining emissions are among the lowest in this category.",
		},
		TierMedium: {
			badge: "On Track",
			story: "The carbon footprint sits below the category average, but parts of the chain still run on fossil energy. The producer has published a reduction plan for the remaining hotspots.",
		},
		TierLow: {
			badge: "High Impact",
			story: "Making and moving this product releases more CO₂ than most alternatives on the same shelf. Long transport legs and energy-intensive processing drive most of it.",
		},
	},
	PillarRecyclability: {
		TierHigh: {
			badge: "Circular Champion",
			story: "Nearly the whole pack feeds back into the material loop when sorted correctly. Carton, cap and liner all have established recycling streams.",
		},
		TierMedium: {
			badge: "Mostly Recyclable",
			story: "The main body of the pack recycles well, but some components still end up as residual waste. Check the local sorting rules for the cap and liner.",
		},
		TierLow: {
			badge: "Hard to Recycle",
			story: "Most of this packaging currently ends up incinerated or landfilled. Composite layers make it difficult for sorting plants to recover the materials.",
		},
	},
	PillarAnimalWelfare: {
		TierHigh: {
			badge: "Welfare Certified",
			story: "Animals in this chain live under audited welfare standards well above the legal minimum. Pasture access and low stocking densities are independently verified.",
		},
		TierMedium: {
			badge: "Above Standard",
			story: "Welfare conditions exceed the legal baseline, though not all farms in the chain are audited yet. The producer is extending certification across its suppliers.",
		},
		TierLow: {
			badge: "Baseline Only",
			story: "This chain meets legal welfare requirements and little more. No independent audit covers housing or transport conditions.",
		},
	},
	PillarLocalSourcing: {
		TierHigh: {
			badge: "Regional Hero",
			story: "Ingredients come from farms close to the processing site, keeping transport short and the regional economy in the loop. Most suppliers are within a day's drive.",
		},
		TierMedium: {
			badge: "Mixed Origins",
			story: "A good share of the ingredients is sourced regionally, with the rest travelling from further afield. Seasonal availability drives most of the distance.",
		},
		TierLow: {
			badge: "Long Haul",
			story: "The main ingredients cross borders, sometimes continents, before processing. Local alternatives exist for only part of the recipe.",
		},
	},
	PillarPackaging: {
		TierHigh: {
			badge: "Renewable Pack",
			story: "The pack is built mostly from renewable, responsibly sourced materials. Fossil-based plastic plays only a minor role in the closure.",
		},
		TierMedium: {
			badge: "Getting Lighter",
			story: "Renewable content makes up a solid share of the pack, and the total material use keeps dropping. The barrier layers still rely on conventional plastic.",
		},
		TierLow: {
			badge: "Conventional Pack",
			story: "This packaging leans on virgin fossil-based materials. Lighter or renewable formats exist but have not been adopted for this product yet.",
		},
	},
}

func narrativeFor(p Pillar, t Tier) narrative {
	if byTier, ok := narratives[p]; ok {
		if n, ok := byTier[t]; ok {
			return n
		}
	}
	// Unknown pillar/tier combinations fall back to a neutral narrative so
	// additions never panic mid-render.
	return narrative{badge: "Unrated", story: "No sustainability story is available for this dimension yet."}
}
