package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/pokedex/internal/pokedex"
)

// RenderStyledList renders list for a non-interactive terminal: a title, one
// card row per entry cut to width cells, and a boxed count.
func RenderStyledList(list []pokedex.Pokemon, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(Title))
	b.WriteString("\n\n")

	for _, p := range list {
		b.WriteString(ansi.Truncate(RenderCard(p, false), width, ""))
		b.WriteString("\n")
	}
	if len(list) == 0 {
		b.WriteString(SubtleStyle.Render("  No Pokémon match"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(ValueStyle.Render(pokedex.CountLabel(len(list)))))
	return b.String()
}
