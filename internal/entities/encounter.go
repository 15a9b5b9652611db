package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

// Encounter is a recorded encounter and the loot it produced.
type Encounter struct {
	ID          string            `json:"id" yaml:"id"`
	Date        time.Time         `json:"date" yaml:"date"`
	Level       int               `json:"level" yaml:"level"`
	Difficulty  tables.Difficulty `json:"difficulty" yaml:"difficulty"`
	Description string            `json:"description" yaml:"description"`
	Loot        []LootItem        `json:"loot" yaml:"loot"`
	// TotalValue is the sum of the loot values.
	TotalValue wealth.Copper `json:"total_value" yaml:"total_value"`
}

// LootItem is one line of recorded loot.
type LootItem struct {
	Name   string        `json:"name" yaml:"name"`
	Type   string        `json:"type" yaml:"type"`
	Rarity tables.Rarity `json:"rarity" yaml:"rarity"`
	Value  wealth.Copper `json:"value" yaml:"value"`
}
