package pokedex

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OutputFormat selects how Render writes a list.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Render writes list to w in the requested format.
func Render(w io.Writer, format OutputFormat, list []Pokemon) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if list == nil {
			list = []Pokemon{}
		}
		return enc.Encode(list)
	case OutputNDJSON:
		enc := json.NewEncoder(w)
		for _, p := range list {
			if err := enc.Encode(p); err != nil {
				return err
			}
		}
		return nil
	case OutputTable:
		return renderTable(w, list)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderTable(w io.Writer, list []Pokemon) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, "ID\tNAME\tTYPES\tATTACK\tDEFENSE\tSPEED"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "--\t----\t-----\t------\t-------\t-----"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, p := range list {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
			p.ID, p.Name, strings.Join(p.Types, ", "), p.Attack, p.Defense, p.Speed); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, CountLabel(len(list)))
	return err
}

// CountLabel renders "1 Pokémon" / "1,025 Pokémon".
func CountLabel(n int) string {
	return printer.Sprintf("%d Pokémon", n)
}

// RenderDetail writes the expanded, plain-text view of one entry.
func RenderDetail(w io.Writer, p Pokemon) error {
	image := p.ImageURL
	if image == "" {
		image = "(none)"
	}
	_, err := fmt.Fprintf(w, "#%d %s\nImage: %s\nTypes: %s\nAttack: %d\nDefense: %d\nSpeed: %d\n",
		p.ID, p.Name, image, strings.Join(p.Types, ", "), p.Attack, p.Defense, p.Speed)
	return err
}
