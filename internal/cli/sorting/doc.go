// Package sorting parses --sort expressions and orders Pokémon lists for the
// non-interactive commands.
//
// Without --sort the list keeps index order, which is the order the API
// returns entries in.
package sorting
