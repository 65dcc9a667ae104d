// Package pokedex turns Pokémon API records into flat view models.
//
// It owns the load pipeline (one index request followed by a concurrent
// fan-out of detail requests, joined all-or-nothing), the mapping from the
// API's nested detail record to Pokemon, and the name filter used by both
// the interactive browser and the plain list output.
package pokedex
