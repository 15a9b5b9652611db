package campaign

import (
	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

// CreateInput defines the request for creating a campaign
type CreateInput struct {
	Name  string
	Level int
	// PlayerCount defaults to four when not positive.
	PlayerCount int
}

// CreateOutput defines the response for creating a campaign
type CreateOutput struct {
	Campaign *entities.Campaign
}

// GetInput defines the request for getting a campaign
type GetInput struct {
	CampaignID string
}

// GetOutput defines the response for getting a campaign
type GetOutput struct {
	Campaign *entities.Campaign
}

// ListInput defines the request for listing campaigns
type ListInput struct{}

// ListOutput defines the response for listing campaigns
type ListOutput struct {
	Campaigns []*entities.Campaign
}

// DeleteInput defines the request for deleting a campaign
type DeleteInput struct {
	CampaignID string
}

// DeleteOutput defines the response for deleting a campaign
type DeleteOutput struct{}

// ImportCharacterInput defines the request for importing a Pathbuilder export
type ImportCharacterInput struct {
	CampaignID string
	// Data is the Pathbuilder JSON, either the bare build or wrapped in
	// {"build": ...}.
	Data []byte
}

// ImportCharacterOutput defines the response for importing a character
type ImportCharacterOutput struct {
	Campaign  *entities.Campaign
	Character *entities.Character
}

// RecordEncounterInput defines the request for recording an encounter
type RecordEncounterInput struct {
	CampaignID  string
	Level       int
	Difficulty  tables.Difficulty
	Description string
	Loot        []entities.LootItem
}

// RecordEncounterOutput defines the response for recording an encounter
type RecordEncounterOutput struct {
	Campaign  *entities.Campaign
	Encounter *entities.Encounter
}

// SetCharacterWealthInput defines the request for assigning wealth
type SetCharacterWealthInput struct {
	CampaignID  string
	CharacterID string
	Wealth      wealth.Copper
}

// SetCharacterWealthOutput defines the response for assigning wealth
type SetCharacterWealthOutput struct {
	Campaign  *entities.Campaign
	Character *entities.Character
}

// DistributeWealthEvenlyInput defines the request for splitting the loot
type DistributeWealthEvenlyInput struct {
	CampaignID string
}

// DistributeWealthEvenlyOutput defines the response for splitting the loot
type DistributeWealthEvenlyOutput struct {
	Campaign *entities.Campaign
	// Share is what each character was assigned.
	Share wealth.Copper
}

// ResetCharacterWealthInput defines the request for clearing assigned wealth
type ResetCharacterWealthInput struct {
	CampaignID string
}

// ResetCharacterWealthOutput defines the response for clearing assigned wealth
type ResetCharacterWealthOutput struct {
	Campaign *entities.Campaign
}

// WealthReportInput defines the request for a wealth report
type WealthReportInput struct {
	CampaignID string
}

// CharacterWealthReport compares one character against the wealth table.
type CharacterWealthReport struct {
	Character *entities.Character
	Expected  tables.CharacterWealth
	Status    wealth.Status
}

// WealthReportOutput defines the response for a wealth report
type WealthReportOutput struct {
	Campaign      *entities.Campaign
	PartyExpected wealth.PartyWealth
	PartyStatus   wealth.Status
	Characters    []CharacterWealthReport
	// Unassigned is the loot not yet assigned to any character.
	Unassigned wealth.Copper
}

// ExportInput defines the request for exporting a campaign
type ExportInput struct {
	CampaignID string
}

// ExportOutput defines the response for exporting a campaign
type ExportOutput struct {
	Data []byte
}

// ImportInput defines the request for importing an exported campaign
type ImportInput struct {
	Data []byte
}

// ImportOutput defines the response for importing a campaign
type ImportOutput struct {
	Campaign *entities.Campaign
}
