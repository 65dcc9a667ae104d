package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/cli/sorting"
	"github.com/rshade/pokedex/internal/config"
	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui"
)

func newListCmd() *cobra.Command {
	var (
		search  string
		sortBy  string
		outFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the collection, optionally filtered by name",
		Long: `Loads the collection and prints it. --search keeps entries whose name
contains the text, ignoring case. The load is all-or-nothing: if any entry
fails to load nothing is printed.`,
		Example: `  pokedex list
  pokedex list --search CHAR
  pokedex list --sort attack:desc --output ndjson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			format, err := resolveOutputFormat(outFlag)
			if err != nil {
				return err
			}

			var field, order string
			if sortBy != "" {
				if field, order, err = sorting.ParseSort(sortBy); err != nil {
					return err
				}
			}

			list, err := loadAll(ctx)
			if err != nil {
				return err
			}

			shown := pokedex.Filter(list, search)
			if field != "" {
				shown = sorting.Sort(shown, field, order)
			}

			logging.FromContext(ctx).Debug().Ctx(ctx).
				Str("search", search).
				Int("count", len(list)).
				Int("shown", len(shown)).
				Msg("list filtered")

			return renderList(cmd, outputMode(cmd), format, shown)
		},
	}

	cmd.Flags().StringVarP(&search, flagSearch, "s", "", "only show Pokémon whose name contains this text")
	cmd.Flags().StringVar(&sortBy, flagSort, "", "sort by field[:asc|desc] (id, name, attack, defense, speed)")
	cmd.Flags().StringVarP(&outFlag, flagOutput, "o", "", "output format: table, json, ndjson (default from config)")

	return cmd
}

// renderList writes list as a styled table when the terminal allows it and
// the format is table, otherwise in the plain requested format.
func renderList(cmd *cobra.Command, mode tui.OutputMode, format pokedex.OutputFormat, list []pokedex.Pokemon) error {
	if format != pokedex.OutputTable || mode == tui.OutputModePlain {
		return pokedex.Render(cmd.OutOrStdout(), format, list)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStyledList(list, tui.TerminalWidth()))
	return err
}

// resolveOutputFormat applies the configured default and validates the result.
func resolveOutputFormat(flagValue string) (pokedex.OutputFormat, error) {
	format := config.GetOutputFormat(flagValue)
	if !config.IsValidOutputFormat(format) {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
	return pokedex.OutputFormat(format), nil
}
