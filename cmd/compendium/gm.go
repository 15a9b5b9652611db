package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

var (
	gmLevel       int
	gmDifficulty  string
	gmCreature    string
	gmPlayers     int
	gmRecord      string
	gmDescription string
)

var gmCmd = &cobra.Command{
	Use:   "gm",
	Short: "Game master generators and tables",
}

var gmLootCmd = &cobra.Command{
	Use:   "loot",
	Short: "Generate encounter loot",
	Long: `Loot rolls coins and items for one encounter from the treasure by encounter
table. With --record the result is added to a campaign.`,
	Args: cobra.NoArgs,
	RunE: runGMLoot,
}

var gmPackageCmd = &cobra.Command{
	Use:   "package",
	Short: "Generate a starting package for a character",
	Args:  cobra.NoArgs,
	RunE:  runGMPackage,
}

var gmWealthCmd = &cobra.Command{
	Use:   "wealth",
	Short: "Show the expected party and character wealth for a level",
	Args:  cobra.NoArgs,
	RunE:  runGMWealth,
}

var gmBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the XP budget for an encounter",
	Args:  cobra.NoArgs,
	RunE:  runGMBudget,
}

var gmCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Drop the cached item pools",
	Args:  cobra.NoArgs,
	RunE:  runGMClearCache,
}

func init() {
	gmLootCmd.Flags().IntVar(&gmLevel, "level", 1, "party level")
	gmLootCmd.Flags().StringVar(&gmDifficulty, "difficulty", string(tables.DifficultyModerate), "trivial, low, moderate, severe or extreme")
	gmLootCmd.Flags().StringVar(&gmCreature, "creature", string(tables.CreatureHumanoid), "creature type dropping the loot")
	gmLootCmd.Flags().StringVar(&gmRecord, "record", "", "campaign ID to record the encounter in")
	gmLootCmd.Flags().StringVar(&gmDescription, "description", "", "encounter description when recording")

	gmPackageCmd.Flags().IntVar(&gmLevel, "level", 1, "character level")

	gmWealthCmd.Flags().IntVar(&gmLevel, "level", 1, "party level")
	gmWealthCmd.Flags().IntVar(&gmPlayers, "players", tables.BasePartySize, "number of players")

	gmBudgetCmd.Flags().StringVar(&gmDifficulty, "difficulty", string(tables.DifficultyModerate), "trivial, low, moderate, severe or extreme")
	gmBudgetCmd.Flags().IntVar(&gmPlayers, "players", tables.BasePartySize, "number of players")

	gmCmd.AddCommand(gmLootCmd)
	gmCmd.AddCommand(gmPackageCmd)
	gmCmd.AddCommand(gmWealthCmd)
	gmCmd.AddCommand(gmBudgetCmd)
	gmCmd.AddCommand(gmCacheCmd)
}

func runGMLoot(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	difficulty, err := tables.ParseDifficulty(gmDifficulty)
	if err != nil {
		return err
	}

	svc, err := application.Loot(ctx)
	if err != nil {
		return err
	}

	out, err := svc.GenerateLoot(ctx, &loot.GenerateLootInput{
		PartyLevel:   gmLevel,
		Difficulty:   difficulty,
		CreatureType: tables.CreatureType(strings.ToLower(strings.TrimSpace(gmCreature))),
	})
	if err != nil {
		return err
	}

	p := newPrinter()
	w := cmd.OutOrStdout()
	p.loot(w, out)

	if gmRecord == "" {
		return nil
	}

	campaigns, err := application.Campaigns(ctx)
	if err != nil {
		return err
	}

	recorded, err := campaigns.RecordEncounter(ctx, &campaign.RecordEncounterInput{
		CampaignID:  gmRecord,
		Level:       out.Level,
		Difficulty:  out.Difficulty,
		Description: gmDescription,
		Loot:        lootItems(out),
	})
	if err != nil {
		return err
	}

	p.line(w, "campaign.encounter", p.label("difficulty."+string(out.Difficulty)), recorded.Campaign.TotalLootValue.Gold())
	return nil
}

// lootItems flattens generated loot into campaign loot lines. Coins are
// recorded as a single currency line.
func lootItems(out *loot.GenerateLootOutput) []entities.LootItem {
	items := make([]entities.LootItem, 0, len(out.Items)+1)
	if total := out.CoinTotal(); total > 0 {
		items = append(items, entities.LootItem{
			Name:   "Currency",
			Type:   "currency",
			Rarity: tables.RarityCommon,
			Value:  total,
		})
	}
	for _, it := range out.Items {
		items = append(items, entities.LootItem{
			Name:   it.Name,
			Type:   string(it.Category),
			Rarity: it.Rarity,
			Value:  it.Price,
		})
	}
	return items
}

func runGMPackage(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	svc, err := application.Loot(ctx)
	if err != nil {
		return err
	}

	out, err := svc.GenerateCharacterPackage(ctx, &loot.GenerateCharacterPackageInput{Level: gmLevel})
	if err != nil {
		return err
	}

	newPrinter().characterPackage(cmd.OutOrStdout(), out)
	return nil
}

func runGMWealth(cmd *cobra.Command, _ []string) error {
	players := gmPlayers
	if players <= 0 {
		players = tables.BasePartySize
	}

	p := newPrinter()
	w := cmd.OutOrStdout()

	party := wealth.ExpectedPartyWealth(gmLevel, players)
	p.line(w, "wealth.party", party.Level, party.Players, party.Total, party.Currency)

	ch := wealth.ExpectedCharacterWealth(gmLevel)
	p.line(w, "wealth.character", ch.Level, ch.Currency, ch.LumpSum)
	for _, slot := range ch.PermanentItems {
		p.line(w, "package.permanent_slot", slot.Count, slot.Level)
	}
	return nil
}

func runGMBudget(cmd *cobra.Command, _ []string) error {
	difficulty, err := tables.ParseDifficulty(gmDifficulty)
	if err != nil {
		return err
	}

	p := newPrinter()
	p.line(cmd.OutOrStdout(), "encounter.budget",
		p.label("difficulty."+string(difficulty)),
		max(gmPlayers, 1),
		tables.EncounterBudget(difficulty, gmPlayers))
	return nil
}

func runGMClearCache(cmd *cobra.Command, _ []string) error {
	removed, err := application.InvalidateItemCache(cmd.Context())
	if err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "cache.invalidated", removed)
	return nil
}

// manualLoot is the loot line for a hand entered gold value.
func manualLoot(gold float64) entities.LootItem {
	return entities.LootItem{
		Name:   "Loot",
		Type:   "manual",
		Rarity: tables.RarityCommon,
		Value:  wealth.FromCoins(gold, 0, 0),
	}
}
