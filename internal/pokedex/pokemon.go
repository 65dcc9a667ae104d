package pokedex

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rshade/pokedex/internal/pokeapi"
)

// Stat names looked up in the API stats list.
const (
	StatAttack  = "attack"
	StatDefense = "defense"
	StatSpeed   = "speed"
)

// ErrMissingStat is matched by every MissingStatError.
var ErrMissingStat = errors.New("missing stat")

// MissingStatError reports a detail record without one of the required stats.
type MissingStatError struct {
	Pokemon string
	Stat    string
}

func (e *MissingStatError) Error() string {
	return fmt.Sprintf("pokemon %q has no %q stat", e.Pokemon, e.Stat)
}

// Is lets errors.Is(err, ErrMissingStat) match.
func (e *MissingStatError) Is(target error) bool {
	return target == ErrMissingStat
}

// Pokemon is the flattened, display-ready projection of one API record.
// Values are built once during a load and never mutated afterwards.
type Pokemon struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// ImageURL is empty when the source record had no front sprite.
	ImageURL string   `json:"imageUrl"`
	Types    []string `json:"types"`
	Attack   int      `json:"attack"`
	Defense  int      `json:"defense"`
	Speed    int      `json:"speed"`
}

// HasImage reports whether the record carried a sprite URL.
func (p Pokemon) HasImage() bool {
	return p.ImageURL != ""
}

// MapDetail projects a detail record onto a Pokemon. Types keep source
// order. Stats are found by exact name; a missing one is an error.
func MapDetail(d *pokeapi.Detail) (Pokemon, error) {
	if d == nil {
		return Pokemon{}, errors.New("nil pokemon detail")
	}

	p := Pokemon{
		ID:    d.ID,
		Name:  d.Name,
		Types: make([]string, 0, len(d.Types)),
	}
	if d.Sprites.FrontDefault != nil {
		p.ImageURL = *d.Sprites.FrontDefault
	}
	for _, t := range d.Types {
		p.Types = append(p.Types, t.Type.Name)
	}

	var err error
	if p.Attack, err = findStat(d, StatAttack); err != nil {
		return Pokemon{}, err
	}
	if p.Defense, err = findStat(d, StatDefense); err != nil {
		return Pokemon{}, err
	}
	if p.Speed, err = findStat(d, StatSpeed); err != nil {
		return Pokemon{}, err
	}
	return p, nil
}

func findStat(d *pokeapi.Detail, name string) (int, error) {
	for _, s := range d.Stats {
		if s.Stat.Name == name {
			return s.BaseStat, nil
		}
	}
	return 0, &MissingStatError{Pokemon: d.Name, Stat: name}
}

// MarshalJSON writes imageUrl as null when the record had no sprite.
func (p Pokemon) MarshalJSON() ([]byte, error) {
	type alias Pokemon
	var img *string
	if p.ImageURL != "" {
		img = &p.ImageURL
	}
	return json.Marshal(struct {
		alias
		ImageURL *string `json:"imageUrl"`
	}{alias: alias(p), ImageURL: img})
}
