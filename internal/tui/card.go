package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui/detail"
)

// SkeletonRows is the number of placeholder rows drawn while loading.
const SkeletonRows = 10

// Card column widths.
const (
	cardIDWidth    = 5
	cardNameWidth  = 14
	cardTypesWidth = 18
	cardBarWidth   = 8
	cardGap        = "  "
)

// RenderCard formats one Pokémon as a list row: number, name, types and the
// three stats each with a short bar.
func RenderCard(p pokedex.Pokemon, selected bool) string {
	row := fmt.Sprintf("%-*s%s%s%s%s%s%s%s%s%s%s",
		cardIDWidth, fmt.Sprintf("#%03d", p.ID), cardGap,
		fitCell(detail.DisplayName(p.Name), cardNameWidth), cardGap,
		fitCell(detail.TypesLabel(p.Types), cardTypesWidth), cardGap,
		renderCardStat("ATK", p.Attack), cardGap,
		renderCardStat("DEF", p.Defense), cardGap,
		renderCardStat("SPD", p.Speed),
	)

	if selected {
		return SelectedStyle.Render("> " + row)
	}
	return "  " + row
}

// fitCell truncates s to width terminal cells and pads it to exactly width.
func fitCell(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}

func renderCardStat(label string, v int) string {
	return LabelStyle.Render(label) + " " + fmt.Sprintf("%3d", v) + " " + detail.StatBar(v, cardBarWidth)
}

// RenderSkeleton draws the placeholder rows shown before data arrives.
func RenderSkeleton(width int) string {
	rowWidth := width - borderPadding*2
	if rowWidth < cardIDWidth {
		rowWidth = defaultWidth - borderPadding*2
	}
	row := SkeletonStyle.Render("  " + strings.Repeat("░", rowWidth-2))

	rows := make([]string, SkeletonRows)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
