package tables

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

const weightTolerance = 1e-9

// Validate checks the table invariants: every per-level table covers
// MinLevel..MaxLevel without gaps and every distribution sums to 1.
func Validate() error {
	vb := errors.NewValidationBuilder()

	levels := func(name string, n int, level func(i int) int) {
		if n != MaxLevel-MinLevel+1 {
			vb.Fieldf(name, "has %d rows, want %d", n, MaxLevel-MinLevel+1)
			return
		}
		for i := 0; i < n; i++ {
			if got := level(i); got != MinLevel+i {
				vb.Fieldf(name, "row %d has level %d, want %d", i, got, MinLevel+i)
				return
			}
		}
	}

	levels("treasure_by_encounter", len(treasureByEncounter), func(i int) int { return treasureByEncounter[i].Level })
	levels("party_treasure_by_level", len(partyTreasureByLevel), func(i int) int { return partyTreasureByLevel[i].Level })
	levels("character_wealth_by_level", len(characterWealthByLevel), func(i int) int { return characterWealthByLevel[i].Level })

	for _, t := range CreatureTypes {
		p, ok := creatureProfiles[t]
		if !ok {
			vb.Field(fmt.Sprintf("creature_profiles.%s", t), "is missing")
			continue
		}
		var sum float64
		for _, w := range p.Weights {
			sum += w.Weight
		}
		if math.Abs(sum-1) > weightTolerance {
			vb.Fieldf(fmt.Sprintf("creature_profiles.%s", t), "weights sum to %v", sum)
		}
	}

	var sum float64
	for _, w := range rarityWeights {
		sum += w.Weight
	}
	if math.Abs(sum-1) > weightTolerance {
		vb.Fieldf("rarity_weights", "weights sum to %v", sum)
	}

	return vb.Build()
}
