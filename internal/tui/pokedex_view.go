package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/internal/tui/detail"
)

// Title is the heading drawn above every screen.
const Title = "Pokédex"

// View renders the current view.
func (m *PokedexModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		if m.selected != nil {
			return placeOverlay(detail.Render(*m.selected), m.renderListView(), m.width, m.height)
		}
		return m.renderListView()
	case ViewStateLoading:
		return m.renderLoadingView()
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m *PokedexModel) renderHeader() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	return b.String()
}

func (m *PokedexModel) renderLoadingView() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(RenderSkeleton(m.width))
	b.WriteString("\n\n")
	b.WriteString(RenderLoading(m.loading))
	return b.String()
}

func (m *PokedexModel) renderErrorView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(Title))
	b.WriteString("\n")
	b.WriteString(CriticalStyle.Render("Failed to load Pokémon"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %v\n\n", m.err))
	b.WriteString(SubtleStyle.Render("Press q to quit"))
	return b.String()
}

func (m *PokedexModel) renderListView() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())

	if len(m.filtered) == 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  No Pokémon match %q", m.search.Value())))
	} else {
		b.WriteString(m.virtualList.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *PokedexModel) renderStatusBar() string {
	status := fmt.Sprintf("Showing %d of %s", len(m.filtered), pokedex.CountLabel(len(m.all)))
	help := "↑/↓ navigate • enter details • esc clear/quit • ctrl+c quit"
	return SubtleStyle.Render(status + " | " + help)
}
