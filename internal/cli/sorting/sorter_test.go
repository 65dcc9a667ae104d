package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokedex/internal/pokedex"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "field only", expr: "speed", wantField: "speed", wantOrder: OrderAsc},
		{name: "explicit desc", expr: "attack:desc", wantField: "attack", wantOrder: OrderDesc},
		{name: "mixed case", expr: " Name : ASC ", wantField: "name", wantOrder: OrderAsc},
		{name: "empty", expr: "", wantErr: ErrEmptySortField},
		{name: "unknown field", expr: "hp", wantErr: ErrInvalidSortField},
		{name: "bad order", expr: "id:sideways", wantErr: ErrInvalidSortOrder},
		{name: "too many parts", expr: "id:asc:x", wantErr: ErrInvalidSortFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.expr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestValidFields(t *testing.T) {
	assert.Equal(t, []string{"attack", "defense", "id", "name", "speed"}, ValidFields())
}

func TestSort(t *testing.T) {
	list := []pokedex.Pokemon{
		{ID: 1, Name: "bulbasaur", Speed: 45},
		{ID: 4, Name: "charmander", Speed: 65},
		{ID: 7, Name: "squirtle", Speed: 43},
		{ID: 25, Name: "pikachu", Speed: 90},
		{ID: 2, Name: "ivysaur", Speed: 65},
	}

	bySpeed := Sort(list, FieldSpeed, OrderDesc)
	assert.Equal(t, []int{25, 4, 2, 1, 7}, ids(bySpeed), "ties keep input order")

	byName := Sort(list, FieldName, OrderAsc)
	assert.Equal(t, []int{1, 4, 2, 25, 7}, ids(byName))

	assert.Equal(t, []int{1, 4, 7, 25, 2}, ids(list), "input is not modified")
	assert.Equal(t, ids(list), ids(Sort(list, "hp", OrderAsc)))
}

func ids(list []pokedex.Pokemon) []int {
	out := make([]int, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}
