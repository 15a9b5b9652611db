package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-compendium/internal/app"
	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign"
	campaignmock "github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot"
	lootmock "github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

// CommandsTestSuite drives the cobra commands end to end with mocked
// services.
type CommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockLoot      *lootmock.MockService
	mockCampaigns *campaignmock.MockService
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLoot = lootmock.NewMockService(s.ctrl)
	s.mockCampaigns = campaignmock.NewMockService(s.ctrl)
	appOptions = []app.Option{
		app.WithLootService(s.mockLoot),
		app.WithCampaignService(s.mockCampaigns),
	}
}

func (s *CommandsTestSuite) TearDownTest() {
	appOptions = nil
	shutdown()
	s.ctrl.Finish()
}

func (s *CommandsTestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--lang", "en", "--redis="}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CommandsTestSuite) sampleLoot() *loot.GenerateLootOutput {
	return &loot.GenerateLootOutput{
		Level:         5,
		Difficulty:    tables.DifficultySevere,
		CreatureType:  tables.CreatureUndead,
		BaseValue:     200,
		FinalValue:    190,
		CurrencyValue: 90,
		Coins:         []loot.CoinLine{{Coin: loot.CoinGold, Count: 90, Value: 9000}},
		ItemBudget:    wealth.FromGold(100),
		Items: []*loot.Item{
			{Name: "Ghost Touch Dagger", Category: tables.CategoryWeapon, Level: 5, Rarity: tables.RarityCommon, Price: wealth.FromGold(60)},
		},
		ItemSpend: wealth.FromGold(60),
	}
}

func (s *CommandsTestSuite) TestProcess() {
	out, err := s.run("process", "--tags=false", "Roll @Check[fortitude|dc:20|basic].")
	s.Require().NoError(err)
	s.Equal("Roll <strong>DC 20 Check</strong>.\n", out)
}

func (s *CommandsTestSuite) TestGMBudget() {
	out, err := s.run("gm", "budget", "--difficulty", "severe", "--players", "5")
	s.Require().NoError(err)
	s.Equal("Severe encounter for 5 players: 32 XP\n", out)
}

func (s *CommandsTestSuite) TestGMBudget_UnknownDifficulty() {
	_, err := s.run("gm", "budget", "--difficulty", "deadly")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommandsTestSuite) TestGMLoot() {
	s.mockLoot.EXPECT().
		GenerateLoot(gomock.Any(), &loot.GenerateLootInput{
			PartyLevel:   5,
			Difficulty:   tables.DifficultySevere,
			CreatureType: tables.CreatureUndead,
		}).
		Return(s.sampleLoot(), nil)

	out, err := s.run("gm", "loot", "--level", "5", "--difficulty", "Severe", "--creature", "Undead", "--record=")
	s.Require().NoError(err)
	s.Contains(out, "Severe loot from a level 5 Undead encounter")
	s.Contains(out, "  90 Gold Pieces")
	s.Contains(out, "  Ghost Touch Dagger, level 5, Common, 60.00 gp")
}

func (s *CommandsTestSuite) TestGMLoot_RecordsEncounter() {
	generated := s.sampleLoot()
	s.mockLoot.EXPECT().GenerateLoot(gomock.Any(), gomock.Any()).Return(generated, nil)
	s.mockCampaigns.EXPECT().
		RecordEncounter(gomock.Any(), &campaign.RecordEncounterInput{
			CampaignID:  "camp_1",
			Level:       5,
			Difficulty:  tables.DifficultySevere,
			Description: "crypt ambush",
			Loot:        lootItems(generated),
		}).
		Return(&campaign.RecordEncounterOutput{
			Campaign:  &entities.Campaign{ID: "camp_1", TotalLootValue: wealth.FromGold(150)},
			Encounter: &entities.Encounter{Difficulty: tables.DifficultySevere},
		}, nil)

	out, err := s.run("gm", "loot", "--level", "5", "--difficulty", "severe", "--creature", "undead",
		"--record", "camp_1", "--description", "crypt ambush")
	s.Require().NoError(err)
	s.Contains(out, "Recorded Severe encounter; gold pool is now 150.00 gp")
}

func (s *CommandsTestSuite) TestCampaignList_Empty() {
	s.mockCampaigns.EXPECT().List(gomock.Any(), &campaign.ListInput{}).Return(&campaign.ListOutput{}, nil)

	out, err := s.run("campaign", "list")
	s.Require().NoError(err)
	s.Equal("No campaigns.\n", out)
}

func (s *CommandsTestSuite) TestCampaignSetWealth() {
	s.mockCampaigns.EXPECT().
		SetCharacterWealth(gomock.Any(), &campaign.SetCharacterWealthInput{
			CampaignID:  "camp_1",
			CharacterID: "char_1",
			Wealth:      wealth.Copper(1250),
		}).
		Return(&campaign.SetCharacterWealthOutput{
			Character: &entities.Character{ID: "char_1", Name: "Merisiel", AssignedWealth: 1250},
		}, nil)

	out, err := s.run("campaign", "set-wealth", "camp_1", "char_1", "12.5")
	s.Require().NoError(err)
	s.Equal("Merisiel now holds 12.50 gp\n", out)
}

func (s *CommandsTestSuite) TestCampaignDistribute_NoCharacters() {
	s.mockCampaigns.EXPECT().
		DistributeWealthEvenly(gomock.Any(), &campaign.DistributeWealthEvenlyInput{CampaignID: "camp_1"}).
		Return(nil, errors.FailedPreconditionf("campaign camp_1 has no characters"))

	_, err := s.run("campaign", "distribute", "camp_1")
	s.Require().Error(err)
	s.Equal(75, errors.GetCode(err).ExitCode())
}

func (s *CommandsTestSuite) TestCampaignShow_MissingArgument() {
	_, err := s.run("campaign", "show")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func TestCampaigns_RequireRedis(t *testing.T) {
	appOptions = nil
	defer shutdown()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--redis=", "campaign", "list"})

	err := rootCmd.ExecuteContext(context.Background())
	if !errors.IsFailedPrecondition(err) {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}
