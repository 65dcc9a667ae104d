// Package detail renders the expanded view of a single Pokémon: the overlay
// the browser opens when an entry is selected, and the stat bars shared
// with the list rows.
package detail
