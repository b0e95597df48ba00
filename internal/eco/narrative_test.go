package eco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packport/internal/catalog/models"
)

func TestEveryPillarTierPairHasNarrative(t *testing.T) {
	for _, p := range Pillars() {
		for _, tier := range []Tier{TierLow, TierMedium, TierHigh} {
			n := narrativeFor(p, tier)
			assert.NotEmpty(t, n.badge, "%s/%s badge", p, tier)
			assert.NotEmpty(t, n.story, "%s/%s story", p, tier)
		}
	}
}

func TestUnknownPillarFallsBack(t *testing.T) {
	n := narrativeFor(Pillar("water"), TierHigh)
	assert.Equal(t, "Unrated", n.badge)
}

func TestHeadlineTransformsAreDeterministic(t *testing.T) {
	cases := []struct {
		pillar Pillar
		value  int
		want   string
	}{
		{PillarCO2, 85, "Avoids 340g CO₂e per litre versus the category average"},
		{PillarRecyclability, 92, "92% of this pack can be recycled"},
		{PillarAnimalWelfare, 100, "5/5 welfare rating across the supply chain"},
		{PillarAnimalWelfare, 0, "1/5 welfare rating across the supply chain"},
		{PillarLocalSourcing, 95, "Ingredients travel roughly 290km to reach the shelf"},
		{PillarPackaging, 90, "81% renewable material in the packaging"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, headlineFor(tc.pillar, tc.value), "%s value %d", tc.pillar, tc.value)
	}
}

func TestScoreNarratesEveryPillar(t *testing.T) {
	res, err := Score(models.Sustainability{CO2: 70, Recyclability: 90, AnimalWelfare: 100, LocalSourcing: 40, Packaging: 85})
	require.NoError(t, err)
	require.Len(t, res.Pillars, 5)

	co2 := res.Pillars[PillarCO2]
	assert.Equal(t, TierMedium, co2.Tier)
	assert.Equal(t, "On Track", co2.Badge)

	sourcing := res.Pillars[PillarLocalSourcing]
	assert.Equal(t, TierLow, sourcing.Tier)
	assert.Equal(t, "Long Haul", sourcing.Badge)
	assert.NotEmpty(t, sourcing.Story)
}
