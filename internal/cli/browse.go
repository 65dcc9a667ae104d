package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/config"
	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive Pokédex",
		Long: `Loads the collection and opens a searchable, scrollable list.

Type to filter by name, use the arrow keys to move and Enter to open the
detail card. Esc closes the card, clears the search, or quits.

When stdout is not a terminal, or with --plain, the collection is printed as
a table instead.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	mode := outputMode(cmd)
	if mode != tui.OutputModeInteractive {
		list, err := loadAll(ctx)
		if err != nil {
			return err
		}
		return renderList(cmd, mode, pokedex.OutputTable, list)
	}

	if _, err := effectiveConfig(); err != nil {
		return err
	}
	return runInteractiveBrowse(ctx)
}

// runInteractiveBrowse launches the TUI. The load starts from the model's
// Init and reports progress back into the running program.
func runInteractiveBrowse(ctx context.Context) error {
	log := logging.FromContext(ctx)

	var p *tea.Program
	onProgress := func(s pokedex.ProgressSnapshot) {
		p.Send(tui.LoadProgressMsg{Loaded: s.Loaded, Total: s.Total})
	}

	model := tui.NewPokedexModel(ctx, func(ctx context.Context) ([]pokedex.Pokemon, error) {
		return loadAll(ctx, pokedex.WithProgress(onProgress))
	})
	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	// A failed load has already been shown; still report it to the shell.
	if m, ok := final.(*tui.PokedexModel); ok && m.Err() != nil {
		return m.Err()
	}

	log.Debug().Ctx(ctx).
		Str("base_url", config.GetGlobalConfig().API.BaseURL).
		Msg("browser closed")
	return nil
}
