package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/app"
	"github.com/KirkDiggler/rpg-compendium/internal/config"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
)

var (
	dbPath    string
	redisAddr string
	lang      string
	logLevel  string

	// application is built by the root pre-run hook.
	application *app.App
	// appOptions lets tests inject doubles into the App.
	appOptions []app.Option
)

var rootCmd = &cobra.Command{
	Use:   "compendium",
	Short: "Pathfinder 2e reference and game master toolkit",
	Long: `compendium looks up Pathfinder 2e rules in English or French, rewrites
Foundry annotation tags into readable text, and generates encounter loot and
wealth reports for game masters.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dbPath, "db", "", "reference SQLite database (env COMPENDIUM_DB_PATH)")
	flags.StringVar(&redisAddr, "redis", "", "Redis address for caching and campaigns (env COMPENDIUM_REDIS_ADDR)")
	flags.StringVar(&lang, "lang", "", "display language, en or fr (env COMPENDIUM_LANGUAGE)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env COMPENDIUM_LOG_LEVEL)")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(gmCmd)
	rootCmd.AddCommand(campaignCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("lang") {
		cfg.Language = lang
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	a, err := app.New(cfg, appOptions...)
	if err != nil {
		return err
	}
	application = a

	slog.DebugContext(cmd.Context(), "compendium starting",
		"command", cmd.CommandPath(),
		"language", cfg.Lang(),
		"db", cfg.DBPath,
		"campaigns", cfg.CampaignsEnabled())

	return nil
}

func shutdown() {
	if application != nil {
		application.Shutdown()
		application = nil
	}
}

// printer formats translated labels for the configured language.
type printer struct {
	tr   *i18n.Translator
	lang i18n.Language
}

func newPrinter() printer {
	return printer{tr: application.Translator(), lang: application.Language()}
}

func (p printer) label(key string) string {
	return p.tr.Label(p.lang, key)
}

func (p printer) sprintf(key string, args ...any) string {
	return p.tr.Sprintf(p.lang, key, args...)
}

// requireArgs is cobra.ExactArgs with an InvalidArgument error so the exit
// status reflects a usage problem.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, cmd.UseLine())
		}
		return nil
	}
}
