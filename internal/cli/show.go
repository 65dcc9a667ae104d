package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui"
	"github.com/rshade/pokedex/internal/tui/detail"
)

// ErrNotFound is returned by show when no entry matches.
var ErrNotFound = errors.New("pokémon not found")

func newShowCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "show <name|id>",
		Short: "Print the detail card of one Pokémon",
		Example: `  pokedex show bulbasaur
  pokedex show 25 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(outFlag)
			if err != nil {
				return err
			}

			list, err := loadAll(cmd.Context())
			if err != nil {
				return err
			}

			p, ok := pokedex.Find(list, args[0])
			if !ok {
				return fmt.Errorf("%w: %q", ErrNotFound, args[0])
			}

			if format == pokedex.OutputTable {
				if outputMode(cmd) == tui.OutputModePlain {
					return pokedex.RenderDetail(cmd.OutOrStdout(), p)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), detail.Render(p))
				return err
			}
			return pokedex.Render(cmd.OutOrStdout(), format, []pokedex.Pokemon{p})
		},
	}

	cmd.Flags().StringVarP(&outFlag, flagOutput, "o", "", "output format: table, json, ndjson (default from config)")

	return cmd
}
