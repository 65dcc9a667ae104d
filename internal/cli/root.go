package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/config"
	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Persistent flag names shared by every command.
const (
	flagDebug       = "debug"
	flagBaseURL     = "base-url"
	flagLimit       = "limit"
	flagConcurrency = "concurrency"
	flagTimeout     = "timeout"
	flagRateLimit   = "rate-limit"
	flagOutput      = "output"
	flagSearch      = "search"
	flagSort        = "sort"
	flagPlain       = "plain"
	flagNoColor     = "no-color"
	flagForceColor  = "force-color"
)

// NewRootCmd creates the root Cobra command for the pokedex CLI.
// Running it without a subcommand opens the interactive browser.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup for testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse the original 151 Pokémon from your terminal",
		Long:          "Pokédex: load Pokémon from PokeAPI and search, list or inspect them",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, skip := lookupEnv("POKEDEX_SKIP_DOTENV"); !skip {
				if err := config.LoadDotEnv(); err != nil {
					cmd.PrintErrf("Warning: could not load .env: %v\n", err)
				}
			}

			applyFlagOverrides(cmd, config.GetGlobalConfig())

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: runBrowse,
	}

	pf := cmd.PersistentFlags()
	pf.Bool(flagDebug, false, "enable debug logging")
	pf.String(flagBaseURL, "", "PokeAPI base URL (overrides config and POKEDEX_BASE_URL)")
	pf.Int(flagLimit, 0, "number of Pokémon to load, at least 1 (default from config: 151)")
	pf.Int(flagConcurrency, 0, "max concurrent detail requests, 0 for unbounded (default from config)")
	pf.Duration(flagTimeout, 0, "per-request timeout, 0 for none (default from config: 30s)")
	pf.Float64(flagRateLimit, 0, "max requests per second, 0 for unlimited (default from config)")
	pf.Bool(flagPlain, false, "plain, unstyled output; never open the interactive browser")
	pf.Bool(flagNoColor, false, "disable colors (implies --plain)")
	pf.Bool(flagForceColor, false, "style output even when stdout is not a terminal")

	cmd.AddCommand(newBrowseCmd(), newListCmd(), newShowCmd(), newVersionCmd(ver), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Open the interactive browser
  pokedex

  # List every Pokémon whose name contains "saur"
  pokedex list --search saur

  # Print the fastest Pokémon as JSON
  pokedex list --sort speed:desc --output json

  # Show one Pokémon by name or number
  pokedex show pikachu
  pokedex show 25

  # Talk to a local PokeAPI mirror
  pokedex --base-url http://localhost:8080/api/v2 list`

// applyFlagOverrides copies explicitly set persistent flags over the
// effective config. An explicit zero is applied like any other value.
// Validation is left to the commands that load data, so the config
// subcommands keep working on a broken config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed(flagBaseURL) {
		cfg.API.BaseURL, _ = flags.GetString(flagBaseURL)
	}
	if flags.Changed(flagLimit) {
		cfg.API.Limit, _ = flags.GetInt(flagLimit)
	}
	if flags.Changed(flagConcurrency) {
		cfg.API.Concurrency, _ = flags.GetInt(flagConcurrency)
	}
	if flags.Changed(flagTimeout) {
		cfg.API.Timeout, _ = flags.GetDuration(flagTimeout)
	}
	if flags.Changed(flagRateLimit) {
		cfg.API.RateLimit, _ = flags.GetFloat64(flagRateLimit)
	}
}

// outputMode resolves the output mode from --plain, --no-color and
// --force-color and the attached terminal.
func outputMode(cmd *cobra.Command) tui.OutputMode {
	flags := cmd.Flags()
	plain, _ := flags.GetBool(flagPlain)
	noColor, _ := flags.GetBool(flagNoColor)
	forceColor, _ := flags.GetBool(flagForceColor)
	mode := tui.DetectOutputMode(forceColor, noColor, plain)
	if forceColor && mode == tui.OutputModeStyled {
		tui.ForceColorProfile()
	}
	return mode
}
