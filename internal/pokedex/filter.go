package pokedex

import (
	"strconv"
	"strings"
)

// Filter returns the entries whose name contains search, ignoring case.
// An empty search matches everything. Order is preserved and list is not
// modified.
func Filter(list []Pokemon, search string) []Pokemon {
	needle := strings.ToLower(search)
	out := make([]Pokemon, 0, len(list))
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Find looks an entry up by numeric ID or by case-insensitive exact name.
func Find(list []Pokemon, query string) (Pokemon, bool) {
	if id, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		for _, p := range list {
			if p.ID == id {
				return p, true
			}
		}
		return Pokemon{}, false
	}
	for _, p := range list {
		if strings.EqualFold(p.Name, query) {
			return p, true
		}
	}
	return Pokemon{}, false
}

// maxStatBarPercent caps the bar fill.
const maxStatBarPercent = 100

// StatBarPercent is how full a stat bar is drawn: half the stat value,
// clamped to 0..100.
func StatBarPercent(v int) int {
	pct := v / 2 //nolint:mnd // 200 base stat fills the bar.
	switch {
	case pct < 0:
		return 0
	case pct > maxStatBarPercent:
		return maxStatBarPercent
	default:
		return pct
	}
}
