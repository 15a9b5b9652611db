package tables

import (
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Level bounds for every per-level table
const (
	MinLevel = 1
	MaxLevel = 20

	// MinItemLevel is the lowest level an item may have.
	MinItemLevel = 0
)

// BasePartySize is the party size the tables are written for.
const BasePartySize = 4

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}

// Difficulty is an encounter threat tier.
type Difficulty string

// Encounter difficulties
const (
	DifficultyTrivial  Difficulty = "trivial"
	DifficultyLow      Difficulty = "low"
	DifficultyModerate Difficulty = "moderate"
	DifficultySevere   Difficulty = "severe"
	DifficultyExtreme  Difficulty = "extreme"
)

// Difficulties lists every tier from easiest to hardest.
var Difficulties = []Difficulty{
	DifficultyTrivial,
	DifficultyLow,
	DifficultyModerate,
	DifficultySevere,
	DifficultyExtreme,
}

// ParseDifficulty accepts any casing of a tier name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown difficulty %q", s).
		WithMeta("allowed", Difficulties)
}

func (d Difficulty) String() string {
	return string(d)
}

// itemCounts is the number of loot items rolled per tier.
var itemCounts = map[Difficulty]int{
	DifficultyTrivial:  1,
	DifficultyLow:      2,
	DifficultyModerate: 3,
	DifficultySevere:   4,
	DifficultyExtreme:  5,
}

// ItemCount returns how many items a loot roll attempts for d. Unknown tiers
// get the extreme count.
func ItemCount(d Difficulty) int {
	if n, ok := itemCounts[d]; ok {
		return n
	}
	return itemCounts[DifficultyExtreme]
}

// encounterXP is the XP budget for a four member party.
var encounterXP = map[Difficulty]int{
	DifficultyTrivial:  10,
	DifficultyLow:      15,
	DifficultyModerate: 20,
	DifficultySevere:   30,
	DifficultyExtreme:  40,
}

// EncounterBudget returns the XP budget for d adjusted by two XP per member
// above or below a party of four. A party size below one is treated as one.
func EncounterBudget(d Difficulty, partySize int) int {
	base, ok := encounterXP[d]
	if !ok {
		base = encounterXP[DifficultyModerate]
	}
	partySize = max(partySize, 1)
	return base + (partySize-BasePartySize)*2
}
