// Package campaign implements campaign bookkeeping: characters, recorded
// encounters and the party's share of the loot.
package campaign

//go:generate mockgen -destination=mock/mock_service.go -package=campaignmock github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
	campaignrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/campaign"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

const (
	// DefaultCharacterName is used when an import has no name.
	DefaultCharacterName = "Unnamed Character"

	errCampaignIDRequired = "campaign ID is required"
)

// Service defines the interface for campaign bookkeeping
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// ImportCharacter adds a character from a Pathbuilder export
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)

	// RecordEncounter appends an encounter and adds its loot to the party total
	RecordEncounter(ctx context.Context, input *RecordEncounterInput) (*RecordEncounterOutput, error)

	// Wealth assignment
	SetCharacterWealth(ctx context.Context, input *SetCharacterWealthInput) (*SetCharacterWealthOutput, error)
	DistributeWealthEvenly(ctx context.Context, input *DistributeWealthEvenlyInput) (*DistributeWealthEvenlyOutput, error)
	ResetCharacterWealth(ctx context.Context, input *ResetCharacterWealthInput) (*ResetCharacterWealthOutput, error)

	// WealthReport compares the party and each character to the wealth tables
	WealthReport(ctx context.Context, input *WealthReportInput) (*WealthReportOutput, error)

	// Export and Import move a campaign in and out as YAML
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// Config holds the dependencies for the campaign orchestrator
type Config struct {
	Repository   campaignrepo.Repository
	Clock        clock.Clock
	CampaignIDs  idgen.Generator
	CharacterIDs idgen.Generator
	EncounterIDs idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.CampaignIDs == nil {
		vb.RequiredField("CampaignIDs")
	}
	if c.CharacterIDs == nil {
		vb.RequiredField("CharacterIDs")
	}
	if c.EncounterIDs == nil {
		vb.RequiredField("EncounterIDs")
	}
	return vb.Build()
}

type orchestrator struct {
	repo         campaignrepo.Repository
	clock        clock.Clock
	campaignIDs  idgen.Generator
	characterIDs idgen.Generator
	encounterIDs idgen.Generator
}

// NewOrchestrator creates a new campaign orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:         cfg.Repository,
		clock:        cfg.Clock,
		campaignIDs:  cfg.CampaignIDs,
		characterIDs: cfg.CharacterIDs,
		encounterIDs: cfg.EncounterIDs,
	}, nil
}

func (o *orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("campaign name is required")
	}

	players := input.PlayerCount
	if players <= 0 {
		players = tables.BasePartySize
	}

	now := o.clock.Now()
	c := &entities.Campaign{
		ID:          o.campaignIDs.Generate(),
		Name:        name,
		Level:       tables.ClampLevel(input.Level),
		PlayerCount: players,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := o.repo.Create(ctx, campaignrepo.CreateInput{Campaign: c}); err != nil {
		return nil, errors.Wrap(err, "failed to create campaign")
	}

	slog.InfoContext(ctx, "campaign created",
		"campaign_id", c.ID,
		"name", c.Name,
		"level", c.Level,
		"players", c.PlayerCount)

	return &CreateOutput{Campaign: c}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Campaign: c}, nil
}

func (o *orchestrator) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	out, err := o.repo.List(ctx, campaignrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}
	return &ListOutput{Campaigns: out.Campaigns}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDRequired)
	}
	if _, err := o.repo.Delete(ctx, campaignrepo.DeleteInput{ID: input.CampaignID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete campaign %s", input.CampaignID)
	}

	slog.InfoContext(ctx, "campaign deleted", "campaign_id", input.CampaignID)

	return &DeleteOutput{}, nil
}

func (o *orchestrator) ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := parsePathbuilder(input.Data)
	if err != nil {
		return nil, err
	}

	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	ch.ID = o.characterIDs.Generate()
	c.Characters = append(c.Characters, ch)

	if err := o.save(ctx, c); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character imported",
		"campaign_id", c.ID,
		"character_id", ch.ID,
		"name", ch.Name,
		"level", ch.Level)

	return &ImportCharacterOutput{Campaign: c, Character: ch}, nil
}

// parsePathbuilder reads name and level from a Pathbuilder export. The
// whole document is kept on the character.
func parsePathbuilder(data []byte) (*entities.Character, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse Pathbuilder JSON")
	}
	if doc == nil {
		return nil, errors.InvalidArgument("Pathbuilder JSON must be an object")
	}

	build := doc
	if b, ok := doc["build"].(map[string]any); ok {
		build = b
	}

	name, _ := build["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCharacterName
	}

	level := tables.MinLevel
	if v, ok := build["level"].(float64); ok && v >= tables.MinLevel {
		level = tables.ClampLevel(int(v))
	}

	return &entities.Character{
		Name:        name,
		Level:       level,
		Pathbuilder: doc,
	}, nil
}

func (o *orchestrator) RecordEncounter(ctx context.Context, input *RecordEncounterInput) (*RecordEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	difficulty := tables.DifficultyModerate
	if input.Difficulty != "" {
		d, err := tables.ParseDifficulty(string(input.Difficulty))
		if err != nil {
			return nil, err
		}
		difficulty = d
	}

	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	level := input.Level
	if level == 0 {
		level = c.Level
	}

	enc := &entities.Encounter{
		ID:          o.encounterIDs.Generate(),
		Date:        o.clock.Now(),
		Level:       tables.ClampLevel(level),
		Difficulty:  difficulty,
		Description: strings.TrimSpace(input.Description),
		Loot:        append([]entities.LootItem(nil), input.Loot...),
	}
	for _, item := range enc.Loot {
		if item.Value < 0 {
			return nil, errors.InvalidArgumentf("loot %q has a negative value", item.Name)
		}
		enc.TotalValue += item.Value
	}

	c.Encounters = append(c.Encounters, enc)
	c.TotalLootValue += enc.TotalValue

	if err := o.save(ctx, c); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "encounter recorded",
		"campaign_id", c.ID,
		"encounter_id", enc.ID,
		"difficulty", enc.Difficulty,
		"value", enc.TotalValue,
		"total_loot", c.TotalLootValue)

	return &RecordEncounterOutput{Campaign: c, Encounter: enc}, nil
}

func (o *orchestrator) SetCharacterWealth(ctx context.Context, input *SetCharacterWealthInput) (*SetCharacterWealthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Wealth < 0 {
		return nil, errors.InvalidArgument("wealth cannot be negative")
	}

	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	ch, ok := c.Character(input.CharacterID)
	if !ok {
		return nil, errors.NotFoundf("character %s not found in campaign %s", input.CharacterID, c.ID)
	}
	ch.AssignedWealth = input.Wealth

	if err := o.save(ctx, c); err != nil {
		return nil, err
	}

	return &SetCharacterWealthOutput{Campaign: c, Character: ch}, nil
}

func (o *orchestrator) DistributeWealthEvenly(
	ctx context.Context,
	input *DistributeWealthEvenlyInput,
) (*DistributeWealthEvenlyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	if len(c.Characters) == 0 {
		return nil, errors.FailedPreconditionf("campaign %s has no characters", c.ID)
	}

	share := wealth.DistributeEvenly(c.TotalLootValue, len(c.Characters))
	for _, ch := range c.Characters {
		ch.AssignedWealth = share
	}

	if err := o.save(ctx, c); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "wealth distributed",
		"campaign_id", c.ID,
		"characters", len(c.Characters),
		"share", share)

	return &DistributeWealthEvenlyOutput{Campaign: c, Share: share}, nil
}

func (o *orchestrator) ResetCharacterWealth(
	ctx context.Context,
	input *ResetCharacterWealthInput,
) (*ResetCharacterWealthOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	for _, ch := range c.Characters {
		ch.AssignedWealth = 0
	}

	if err := o.save(ctx, c); err != nil {
		return nil, err
	}

	return &ResetCharacterWealthOutput{Campaign: c}, nil
}

func (o *orchestrator) WealthReport(ctx context.Context, input *WealthReportInput) (*WealthReportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	out := &WealthReportOutput{
		Campaign:      c,
		PartyExpected: wealth.ExpectedPartyWealth(c.Level, c.PlayerCount),
		PartyStatus:   wealth.PartyStatus(c.TotalLootValue, c.Level, c.PlayerCount),
		Unassigned:    c.TotalLootValue,
	}
	for _, ch := range c.Characters {
		out.Characters = append(out.Characters, CharacterWealthReport{
			Character: ch,
			Expected:  wealth.ExpectedCharacterWealth(ch.Level),
			Status:    wealth.CharacterStatus(ch.AssignedWealth, ch.Level),
		})
		out.Unassigned -= ch.AssignedWealth
	}

	return out, nil
}

func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode campaign %s", c.ID)
	}

	return &ExportOutput{Data: data}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var c entities.Campaign
	if err := yaml.Unmarshal(input.Data, &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse campaign YAML")
	}

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, errors.InvalidArgument("campaign name is required")
	}
	if c.ID == "" {
		c.ID = o.campaignIDs.Generate()
	}
	c.Level = tables.ClampLevel(c.Level)
	if c.PlayerCount <= 0 {
		c.PlayerCount = tables.BasePartySize
	}
	if c.TotalLootValue < 0 {
		return nil, errors.InvalidArgument("total loot value cannot be negative")
	}

	characters := make([]*entities.Character, 0, len(c.Characters))
	for _, ch := range c.Characters {
		if ch == nil {
			continue
		}
		if ch.AssignedWealth < 0 {
			return nil, errors.InvalidArgumentf("character %q has negative assigned wealth", ch.Name)
		}
		if ch.ID == "" {
			ch.ID = o.characterIDs.Generate()
		}
		if strings.TrimSpace(ch.Name) == "" {
			ch.Name = DefaultCharacterName
		}
		ch.Level = tables.ClampLevel(ch.Level)
		characters = append(characters, ch)
	}
	c.Characters = characters

	encounters := make([]*entities.Encounter, 0, len(c.Encounters))
	for _, enc := range c.Encounters {
		if enc == nil {
			continue
		}
		if enc.TotalValue < 0 {
			return nil, errors.InvalidArgumentf("encounter %s has a negative value", enc.ID)
		}
		if enc.ID == "" {
			enc.ID = o.encounterIDs.Generate()
		}
		enc.Level = tables.ClampLevel(enc.Level)
		encounters = append(encounters, enc)
	}
	c.Encounters = encounters

	now := o.clock.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	if _, err := o.repo.Create(ctx, campaignrepo.CreateInput{Campaign: &c}); err != nil {
		return nil, errors.Wrap(err, "failed to import campaign")
	}

	slog.InfoContext(ctx, "campaign imported",
		"campaign_id", c.ID,
		"characters", len(c.Characters),
		"encounters", len(c.Encounters))

	return &ImportOutput{Campaign: &c}, nil
}

func (o *orchestrator) load(ctx context.Context, id string) (*entities.Campaign, error) {
	if id == "" {
		return nil, errors.InvalidArgument(errCampaignIDRequired)
	}

	out, err := o.repo.Get(ctx, campaignrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get campaign %s", id)
	}
	return out.Campaign, nil
}

func (o *orchestrator) save(ctx context.Context, c *entities.Campaign) error {
	c.UpdatedAt = o.clock.Now()
	if _, err := o.repo.Update(ctx, campaignrepo.UpdateInput{Campaign: c}); err != nil {
		return errors.Wrapf(err, "failed to save campaign %s", c.ID)
	}
	return nil
}
