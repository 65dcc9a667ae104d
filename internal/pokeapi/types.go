package pokeapi

// NamedResource is the {name, url} pair the API uses for references.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// IndexPage is the response of GET /pokemon?limit=N.
type IndexPage struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results []NamedResource `json:"results"`
}

// Sprites holds image URLs. FrontDefault is null for some entries.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// TypeSlot is one entry of a Pokémon's types list.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatEntry is one entry of a Pokémon's stats list.
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// Detail is the response of GET /pokemon/{id}, reduced to the fields pokedex reads.
type Detail struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Sprites Sprites     `json:"sprites"`
	Types   []TypeSlot  `json:"types"`
	Stats   []StatEntry `json:"stats"`
}
