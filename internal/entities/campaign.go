// Package entities provides the campaign bookkeeping data structures.
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

// EntityTypeCampaign is the core.Entity type of a Campaign.
const EntityTypeCampaign = "campaign"

// Campaign tracks a party's encounters and the loot they have earned.
type Campaign struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Level       int          `json:"level" yaml:"level"`
	PlayerCount int          `json:"player_count" yaml:"player_count"`
	Characters  []*Character `json:"characters" yaml:"characters"`
	Encounters  []*Encounter `json:"encounters" yaml:"encounters"`
	// TotalLootValue is the sum of every recorded encounter's loot.
	TotalLootValue wealth.Copper `json:"total_loot_value" yaml:"total_loot_value"`
	CreatedAt      time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" yaml:"updated_at"`
}

var _ core.Entity = (*Campaign)(nil)

// GetID returns the campaign id
func (c *Campaign) GetID() string {
	return c.ID
}

// GetType returns the entity type
func (c *Campaign) GetType() string {
	return EntityTypeCampaign
}

// Character finds a character by id.
func (c *Campaign) Character(id string) (*Character, bool) {
	for _, ch := range c.Characters {
		if ch != nil && ch.ID == id {
			return ch, true
		}
	}
	return nil, false
}
