package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/pokedex/internal/pokedex"
)

// Layout constants.
const (
	// DefaultBarWidth is the cell width of a full stat bar.
	DefaultBarWidth = 20
	overlayWidth    = 46
	borderPadding   = 2
	labelWidth      = 9
)

// Bar glyphs.
const (
	barFilled = "█"
	barEmpty  = "░"
)

//nolint:gochecknoglobals // Shared styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(labelWidth)
	valueStyle = lipgloss.NewStyle().Bold(true)
	fillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	closeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2) //nolint:mnd // Box padding.

	titleCaser = cases.Title(language.English)
)

// DisplayName title-cases an API name: "mr-mime" -> "Mr-Mime".
func DisplayName(name string) string {
	return titleCaser.String(name)
}

// StatBar draws a bar of width cells filled to pokedex.StatBarPercent(v).
func StatBar(v, width int) string {
	if width < 1 {
		width = DefaultBarWidth
	}
	filled := pokedex.StatBarPercent(v) * width / 100 //nolint:mnd // Percent to cells.
	return fillStyle.Render(strings.Repeat(barFilled, filled)) +
		emptyStyle.Render(strings.Repeat(barEmpty, width-filled))
}

// TypesLabel joins types the way every view shows them.
func TypesLabel(types []string) string {
	if len(types) == 0 {
		return "-"
	}
	return strings.Join(types, ", ")
}

// Render draws the detail card for p.
func Render(p pokedex.Pokemon) string {
	var content strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(fmt.Sprintf("#%03d %s", p.ID, DisplayName(p.Name))),
		"   ",
		closeStyle.Render("[X]"),
	)
	content.WriteString(header)
	content.WriteString("\n\n")

	image := p.ImageURL
	if image == "" {
		image = "no sprite available"
	}
	content.WriteString(labelStyle.Render("Image:"))
	content.WriteString(hintStyle.Render(image))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Types:"))
	content.WriteString(valueStyle.Render(TypesLabel(p.Types)))
	content.WriteString("\n\n")

	for _, s := range []struct {
		label string
		value int
	}{
		{"Attack:", p.Attack},
		{"Defense:", p.Defense},
		{"Speed:", p.Speed},
	} {
		fmt.Fprintf(&content, "%s%s %s\n",
			labelStyle.Render(s.label),
			valueStyle.Render(fmt.Sprintf("%3d", s.value)),
			StatBar(s.value, DefaultBarWidth))
	}

	content.WriteString("\n")
	content.WriteString(hintStyle.Render("[Esc/Enter/x] Close"))

	return boxStyle.Width(overlayWidth - borderPadding).Render(content.String())
}
