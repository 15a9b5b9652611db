package entities

import (
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

// Character is a player character imported into a campaign.
type Character struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
	// AssignedWealth is the share of the party loot given to this character.
	AssignedWealth wealth.Copper `json:"assigned_wealth" yaml:"assigned_wealth"`
	// Pathbuilder holds the imported Pathbuilder export untouched.
	Pathbuilder map[string]any `json:"pathbuilder,omitempty" yaml:"pathbuilder,omitempty"`
}
