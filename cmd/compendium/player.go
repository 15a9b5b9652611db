package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
)

var (
	searchTables []string
	searchLimit  int

	listLevels     []string
	listTraits     []string
	listTraditions []string
	listSource     string
	listLimit      int
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Look up rules in the reference database",
}

var playerGetCmd = &cobra.Command{
	Use:   "get <table> <id>",
	Short: "Show one record",
	Args:  requireArgs(2),
	RunE:  runPlayerGet,
}

var playerSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search record names across tables",
	Long:  `Search matches record names (and French descriptions) and ranks them by similarity. Use "*" to match everything.`,
	Args:  requireArgs(1),
	RunE:  runPlayerSearch,
}

var playerListCmd = &cobra.Command{
	Use:   "list <table>",
	Short: "List records of one table",
	Args:  requireArgs(1),
	RunE:  runPlayerList,
}

func init() {
	playerSearchCmd.Flags().StringSliceVar(&searchTables, "table", nil, "tables to search (default: all rule tables)")
	playerSearchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum results")

	playerListCmd.Flags().StringSliceVar(&listLevels, "level", nil, "levels to include")
	playerListCmd.Flags().StringSliceVar(&listTraits, "trait", nil, "traits to include")
	playerListCmd.Flags().StringSliceVar(&listTraditions, "tradition", nil, "spell traditions to include")
	playerListCmd.Flags().StringVar(&listSource, "source", "", "creature source group (npc table only)")
	playerListCmd.Flags().IntVar(&listLimit, "limit", refstore.DefaultListLimit, "maximum results")

	playerCmd.AddCommand(playerGetCmd)
	playerCmd.AddCommand(playerSearchCmd)
	playerCmd.AddCommand(playerListCmd)
}

func runPlayerGet(cmd *cobra.Command, args []string) error {
	table, err := refstore.ParseTable(args[0])
	if err != nil {
		return err
	}

	store, err := application.Store(cmd.Context())
	if err != nil {
		return err
	}

	out, err := store.Get(cmd.Context(), refstore.GetInput{Table: table, ID: args[1]})
	if err != nil {
		return err
	}

	newPrinter().record(cmd.OutOrStdout(), out.Record)
	return nil
}

func runPlayerSearch(cmd *cobra.Command, args []string) error {
	input := refstore.SearchInput{Query: args[0], Limit: searchLimit}
	for _, name := range searchTables {
		table, err := refstore.ParseTable(name)
		if err != nil {
			return err
		}
		input.Tables = append(input.Tables, table)
	}

	store, err := application.Store(cmd.Context())
	if err != nil {
		return err
	}

	out, err := store.Search(cmd.Context(), input)
	if err != nil {
		return err
	}

	newPrinter().summaries(cmd.OutOrStdout(), out.Records)
	return nil
}

func runPlayerList(cmd *cobra.Command, args []string) error {
	table, err := refstore.ParseTable(args[0])
	if err != nil {
		return err
	}

	levels, err := parseLevels(listLevels)
	if err != nil {
		return err
	}

	source, err := refstore.ParseMonsterSource(listSource)
	if err != nil {
		return err
	}

	store, err := application.Store(cmd.Context())
	if err != nil {
		return err
	}

	out, err := store.List(cmd.Context(), refstore.ListInput{
		Table:      table,
		Levels:     levels,
		Traits:     listTraits,
		Traditions: listTraditions,
		Source:     source,
		Limit:      listLimit,
	})
	if err != nil {
		return err
	}

	newPrinter().summaries(cmd.OutOrStdout(), out.Records)
	return nil
}

func parseLevels(values []string) ([]int, error) {
	levels := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, errors.InvalidArgumentf("level %q is not a number", v)
		}
		levels = append(levels, n)
	}
	return levels, nil
}

// summaryLine is the one line form used by search and list.
func summaryLine(r *refstore.Record) string {
	return fmt.Sprintf("%-10s %-24s %s (%d)", r.Table, r.ID, r.Name, r.Attributes.Level)
}
