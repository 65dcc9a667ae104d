package pokedex

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	list := []Pokemon{
		{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}, Attack: 49, Defense: 49, Speed: 45},
	}
	require.NoError(t, Render(&buf, OutputTable, list))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "bulbasaur")
	assert.Contains(t, out, "grass, poison")
	assert.Contains(t, out, "1 Pokémon")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputJSON, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))

	buf.Reset()
	require.NoError(t, Render(&buf, OutputJSON, []Pokemon{{ID: 1, Name: "bulbasaur", ImageURL: "img1"}}))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "img1", decoded[0]["imageUrl"])
}

func TestRender_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputNDJSON, []Pokemon{{ID: 1}, {ID: 2}}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestRender_Unsupported(t *testing.T) {
	err := Render(&bytes.Buffer{}, OutputFormat("xml"), nil)
	require.Error(t, err)
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "1,025 Pokémon", CountLabel(1025))
}

func TestRenderDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDetail(&buf, Pokemon{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}, Attack: 84}))
	out := buf.String()
	assert.Contains(t, out, "#6 charizard")
	assert.Contains(t, out, "Image: (none)")
	assert.Contains(t, out, "Types: fire, flying")
	assert.Contains(t, out, "Attack: 84")
}
