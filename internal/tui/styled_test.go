package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderStyledList(t *testing.T) {
	out := ansi.Strip(RenderStyledList(samplePokemon(), 120))

	assert.True(t, strings.HasPrefix(out, Title))
	assert.Contains(t, out, "#001")
	assert.Contains(t, out, "Bulbasaur")
	assert.Contains(t, out, "grass, poison")
	assert.Contains(t, out, "#025")
	assert.Contains(t, out, "4 Pokémon")
}

func TestRenderStyledList_CutsToWidth(t *testing.T) {
	out := RenderStyledList(samplePokemon(), 30)

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(ansi.Strip(line), "#0") {
			assert.LessOrEqual(t, ansi.StringWidth(line), 30, line)
		}
	}
}

func TestRenderStyledList_Empty(t *testing.T) {
	out := ansi.Strip(RenderStyledList(nil, 0))

	assert.Contains(t, out, "No Pokémon match")
	assert.Contains(t, out, "0 Pokémon")
}
