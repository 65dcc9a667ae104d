package detail

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/pokedex/internal/pokedex"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Bulbasaur", DisplayName("bulbasaur"))
	assert.Equal(t, "Mr-Mime", DisplayName("mr-mime"))
}

func TestStatBar(t *testing.T) {
	tests := []struct {
		value, width, filled int
	}{
		{value: 0, width: 20, filled: 0},
		{value: 100, width: 20, filled: 10},
		{value: 200, width: 20, filled: 20},
		{value: 255, width: 10, filled: 10},
		{value: 49, width: 0, filled: 4},
	}
	for _, tt := range tests {
		bar := StatBar(tt.value, tt.width)
		width := tt.width
		if width == 0 {
			width = DefaultBarWidth
		}
		assert.Equal(t, tt.filled, strings.Count(bar, barFilled), "value %d", tt.value)
		assert.Equal(t, width-tt.filled, strings.Count(bar, barEmpty), "value %d", tt.value)
	}
}

func TestTypesLabel(t *testing.T) {
	assert.Equal(t, "grass, poison", TypesLabel([]string{"grass", "poison"}))
	assert.Equal(t, "-", TypesLabel(nil))
}

func TestRender(t *testing.T) {
	p := pokedex.Pokemon{
		ID: 1, Name: "bulbasaur", ImageURL: "img1", Types: []string{"grass", "poison"},
		Attack: 49, Defense: 49, Speed: 45,
	}
	out := Render(p)

	assert.Contains(t, out, "#001 Bulbasaur")
	assert.Contains(t, out, "img1")
	assert.Contains(t, out, "grass, poison")
	assert.Contains(t, out, "Attack:")
	assert.Contains(t, out, "Defense:")
	assert.Contains(t, out, "Speed:")
	assert.Contains(t, out, "[X]")
}

func TestRender_NoSprite(t *testing.T) {
	out := Render(pokedex.Pokemon{ID: 2, Name: "ivysaur"})
	assert.Contains(t, out, "no sprite available")
}

func TestRender_FixedWidth(t *testing.T) {
	short := Render(pokedex.Pokemon{ID: 1, Name: "mew"})
	long := Render(pokedex.Pokemon{ID: 2, Name: "ivysaur", ImageURL: "https://example.test/sprites/2.png"})
	assert.Equal(t, overlayWidth, lipgloss.Width(short))
	assert.Equal(t, lipgloss.Width(short), lipgloss.Width(long))
}
