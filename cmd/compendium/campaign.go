package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

var (
	campaignLevel       int
	campaignPlayers     int
	campaignDifficulty  string
	campaignDescription string
	campaignLootValue   float64
	campaignOutput      string
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Track campaign loot and character wealth (requires Redis)",
}

var campaignCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a campaign",
	Args:  requireArgs(1),
	RunE:  runCampaignCreate,
}

var campaignListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCampaignList,
}

var campaignShowCmd = &cobra.Command{
	Use:   "show <campaign>",
	Short: "Show a campaign's characters and encounters",
	Args:  requireArgs(1),
	RunE:  runCampaignShow,
}

var campaignImportCharacterCmd = &cobra.Command{
	Use:   "import-character <campaign> <pathbuilder.json>",
	Short: "Add a character from a Pathbuilder JSON export",
	Args:  requireArgs(2),
	RunE:  runCampaignImportCharacter,
}

var campaignRecordCmd = &cobra.Command{
	Use:   "record <campaign>",
	Short: "Record an encounter and its loot value",
	Args:  requireArgs(1),
	RunE:  runCampaignRecord,
}

var campaignSetWealthCmd = &cobra.Command{
	Use:   "set-wealth <campaign> <character> <gold>",
	Short: "Set the wealth assigned to a character",
	Args:  requireArgs(3),
	RunE:  runCampaignSetWealth,
}

var campaignDistributeCmd = &cobra.Command{
	Use:   "distribute <campaign>",
	Short: "Split the campaign loot evenly between characters",
	Args:  requireArgs(1),
	RunE:  runCampaignDistribute,
}

var campaignResetWealthCmd = &cobra.Command{
	Use:   "reset-wealth <campaign>",
	Short: "Clear the wealth assigned to every character",
	Args:  requireArgs(1),
	RunE:  runCampaignResetWealth,
}

var campaignReportCmd = &cobra.Command{
	Use:   "report <campaign>",
	Short: "Compare tracked wealth against the wealth tables",
	Args:  requireArgs(1),
	RunE:  runCampaignReport,
}

var campaignExportCmd = &cobra.Command{
	Use:   "export <campaign>",
	Short: "Export a campaign as YAML",
	Args:  requireArgs(1),
	RunE:  runCampaignExport,
}

var campaignImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import a campaign exported as YAML",
	Args:  requireArgs(1),
	RunE:  runCampaignImport,
}

var campaignDeleteCmd = &cobra.Command{
	Use:   "delete <campaign>",
	Short: "Delete a campaign",
	Args:  requireArgs(1),
	RunE:  runCampaignDelete,
}

func init() {
	campaignCreateCmd.Flags().IntVar(&campaignLevel, "level", 1, "party level")
	campaignCreateCmd.Flags().IntVar(&campaignPlayers, "players", tables.BasePartySize, "number of players")

	campaignRecordCmd.Flags().IntVar(&campaignLevel, "level", 0, "encounter level (default: campaign level)")
	campaignRecordCmd.Flags().StringVar(&campaignDifficulty, "difficulty", string(tables.DifficultyModerate), "encounter difficulty")
	campaignRecordCmd.Flags().StringVar(&campaignDescription, "description", "", "encounter description")
	campaignRecordCmd.Flags().Float64Var(&campaignLootValue, "value", 0, "loot value in gold")

	campaignExportCmd.Flags().StringVarP(&campaignOutput, "output", "o", "", "write to a file instead of standard output")

	campaignCmd.AddCommand(
		campaignCreateCmd,
		campaignListCmd,
		campaignShowCmd,
		campaignImportCharacterCmd,
		campaignRecordCmd,
		campaignSetWealthCmd,
		campaignDistributeCmd,
		campaignResetWealthCmd,
		campaignReportCmd,
		campaignExportCmd,
		campaignImportCmd,
		campaignDeleteCmd,
	)
}

func campaigns(cmd *cobra.Command) (campaign.Service, error) {
	return application.Campaigns(cmd.Context())
}

func runCampaignCreate(cmd *cobra.Command, args []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.Create(cmd.Context(), &campaign.CreateInput{
		Name:        args[0],
		Level:       campaignLevel,
		PlayerCount: campaignPlayers,
	})
	if err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.created", out.Campaign.Name, out.Campaign.ID)
	return nil
}

func runCampaignList(cmd *cobra.Command, _ []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.List(cmd.Context(), &campaign.ListInput{})
	if err != nil {
		return err
	}

	p := newPrinter()
	w := cmd.OutOrStdout()
	if len(out.Campaigns) == 0 {
		p.line(w, "campaign.none")
		return nil
	}
	for _, c := range out.Campaigns {
		p.line(w, "campaign.row", c.ID, c.Name, c.Level, len(c.Characters))
	}
	return nil
}

func runCampaignShow(cmd *cobra.Command, args []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.Get(cmd.Context(), &campaign.GetInput{CampaignID: args[0]})
	if err != nil {
		return err
	}

	newPrinter().campaign(cmd.OutOrStdout(), out.Campaign)
	return nil
}

func runCampaignImportCharacter(cmd *cobra.Command, args []string) error {
	data, err := readFile(args[1])
	if err != nil {
		return err
	}

	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.ImportCharacter(cmd.Context(), &campaign.ImportCharacterInput{
		CampaignID: args[0],
		Data:       data,
	})
	if err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.imported",
		out.Character.Name, out.Character.Level, out.Campaign.Name)
	return nil
}

func runCampaignRecord(cmd *cobra.Command, args []string) error {
	difficulty, err := tables.ParseDifficulty(campaignDifficulty)
	if err != nil {
		return err
	}

	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	input := &campaign.RecordEncounterInput{
		CampaignID:  args[0],
		Level:       campaignLevel,
		Difficulty:  difficulty,
		Description: campaignDescription,
	}
	if campaignLootValue != 0 {
		input.Loot = append(input.Loot, manualLoot(campaignLootValue))
	}

	out, err := svc.RecordEncounter(cmd.Context(), input)
	if err != nil {
		return err
	}

	p := newPrinter()
	p.line(cmd.OutOrStdout(), "campaign.encounter",
		p.label("difficulty."+string(out.Encounter.Difficulty)), out.Campaign.TotalLootValue.Gold())
	return nil
}

func runCampaignSetWealth(cmd *cobra.Command, args []string) error {
	gold, err := parseGold(args[2])
	if err != nil {
		return err
	}

	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.SetCharacterWealth(cmd.Context(), &campaign.SetCharacterWealthInput{
		CampaignID:  args[0],
		CharacterID: args[1],
		Wealth:      gold,
	})
	if err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.wealth_set",
		out.Character.Name, out.Character.AssignedWealth.Gold())
	return nil
}

func runCampaignDistribute(cmd *cobra.Command, args []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.DistributeWealthEvenly(cmd.Context(), &campaign.DistributeWealthEvenlyInput{CampaignID: args[0]})
	if err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.distributed", len(out.Campaign.Characters), out.Share.Gold())
	return nil
}

func runCampaignResetWealth(cmd *cobra.Command, args []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.ResetCharacterWealth(cmd.Context(), &campaign.ResetCharacterWealthInput{CampaignID: args[0]})
	if err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.reset", out.Campaign.Name)
	return nil
}

func runCampaignReport(cmd *cobra.Command, args []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.WealthReport(cmd.Context(), &campaign.WealthReportInput{CampaignID: args[0]})
	if err != nil {
		return err
	}

	newPrinter().report(cmd.OutOrStdout(), out)
	return nil
}

func runCampaignExport(cmd *cobra.Command, args []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.Export(cmd.Context(), &campaign.ExportInput{CampaignID: args[0]})
	if err != nil {
		return err
	}

	if campaignOutput == "" {
		_, err = cmd.OutOrStdout().Write(out.Data)
		return err
	}

	if err := os.WriteFile(campaignOutput, out.Data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", campaignOutput)
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.exported", args[0], campaignOutput)
	return nil
}

func runCampaignImport(cmd *cobra.Command, args []string) error {
	data, err := readFile(args[0])
	if err != nil {
		return err
	}

	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	out, err := svc.Import(cmd.Context(), &campaign.ImportInput{Data: data})
	if err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.import_done", out.Campaign.Name, out.Campaign.ID)
	return nil
}

func runCampaignDelete(cmd *cobra.Command, args []string) error {
	svc, err := campaigns(cmd)
	if err != nil {
		return err
	}

	if _, err := svc.Delete(cmd.Context(), &campaign.DeleteInput{CampaignID: args[0]}); err != nil {
		return err
	}

	newPrinter().line(cmd.OutOrStdout(), "campaign.deleted", args[0])
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "file not found")
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

// parseGold reads a gold amount such as "12.5" into copper.
func parseGold(s string) (wealth.Copper, error) {
	gp, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("gold amount %q is not a number", s)
	}
	if gp < 0 {
		return 0, errors.InvalidArgumentf("gold amount %q cannot be negative", s)
	}
	return wealth.FromCoins(gp, 0, 0), nil
}
