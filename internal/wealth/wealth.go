// Package wealth compares tracked party and character wealth against the
// expected wealth tables.
package wealth

import (
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
)

// Status is the result of comparing actual wealth to expected wealth.
type Status string

// Wealth statuses
const (
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
)

// Ratio thresholds. Both bounds classify as normal.
const (
	LowRatio  = 0.75
	HighRatio = 1.25
)

// PartyWealth is the expected wealth of a party.
type PartyWealth struct {
	Level   int
	Players int
	// Total is the total treasure value in gold.
	Total int
	// Currency is the currency share in gold, adjusted for party size.
	Currency int
}

// ExpectedPartyWealth returns the expected party wealth for level (clamped).
// Each player beyond four adds the per member currency share; smaller
// parties get no reduction.
func ExpectedPartyWealth(level, players int) PartyWealth {
	row := tables.PartyTreasureByLevel(level)
	extra := max(0, players-tables.BasePartySize)

	return PartyWealth{
		Level:    row.Level,
		Players:  players,
		Total:    row.TotalValue,
		Currency: row.Currency + extra*row.CurrencyPerExtraMember,
	}
}

// ExpectedCharacterWealth returns the wealth row for a character of level
// (clamped).
func ExpectedCharacterWealth(level int) tables.CharacterWealth {
	return tables.CharacterWealthByLevel(level)
}

// Classify compares actual against expected. A zero expectation classifies
// any positive amount as high.
func Classify(actual Copper, expectedGold int) Status {
	if expectedGold <= 0 {
		if actual > 0 {
			return StatusHigh
		}
		return StatusNormal
	}

	ratio := actual.Gold() / float64(expectedGold)
	switch {
	case ratio < LowRatio:
		return StatusLow
	case ratio > HighRatio:
		return StatusHigh
	default:
		return StatusNormal
	}
}

// PartyStatus classifies the party's accumulated loot against the party
// treasure table total.
func PartyStatus(actual Copper, level, players int) Status {
	return Classify(actual, ExpectedPartyWealth(level, players).Total)
}

// CharacterStatus classifies a character's assigned wealth against the lump
// sum for their level.
func CharacterStatus(actual Copper, level int) Status {
	return Classify(actual, ExpectedCharacterWealth(level).LumpSum)
}

// DistributeEvenly returns each member's share of total, rounded down to
// whole gold pieces. It returns zero when there is nobody to share with.
func DistributeEvenly(total Copper, members int) Copper {
	if members <= 0 || total <= 0 {
		return 0
	}
	share := total / Copper(members)
	return share - share%CopperPerGold
}
