package wealth

import (
	"fmt"
	"math"
)

// Coin values in copper pieces
const (
	CopperPerSilver   = 10
	CopperPerGold     = 100
	CopperPerPlatinum = 1000
)

// Copper is an amount of money in copper pieces. Money is kept in integer
// copper so that splitting a budget never creates or loses value.
type Copper int64

// FromGold converts whole gold pieces.
func FromGold(gp int) Copper {
	return Copper(gp) * CopperPerGold
}

// FromCoins converts a gp/sp/cp triple, rounding to the nearest copper.
func FromCoins(gp, sp, cp float64) Copper {
	return Copper(math.Round(gp*CopperPerGold + sp*CopperPerSilver + cp))
}

// Gold returns the value in gold pieces.
func (c Copper) Gold() float64 {
	return float64(c) / CopperPerGold
}

// WholeGold returns the value in gold pieces rounded down.
func (c Copper) WholeGold() int {
	return int(c / CopperPerGold)
}

func (c Copper) String() string {
	return fmt.Sprintf("%.2f gp", c.Gold())
}
