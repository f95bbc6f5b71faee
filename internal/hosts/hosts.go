package hosts

import (
	"sort"

	"github.com/0Draxy/promotronik/internal/listing"
)

// DefaultLimit is the number of host chips shown next to "All".
const DefaultLimit = 6

// Chip is a quick filter bound to a host. The zero Host is the "All" chip.
type Chip struct {
	Host  string
	Count int
}

// Label returns the text shown on the chip.
func (c Chip) Label() string {
	if c.Host == "" {
		return "All"
	}
	return c.Host
}

// Counts returns every parseable host with its frequency, most frequent first.
// Ties keep the order in which hosts were first seen.
func Counts(items []listing.Item) []Chip {
	index := make(map[string]int)
	var counts []Chip
	for _, it := range items {
		h, ok := it.Host()
		if !ok {
			continue
		}
		i, seen := index[h]
		if !seen {
			index[h] = len(counts)
			counts = append(counts, Chip{Host: h, Count: 1})
			continue
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Top returns up to n hosts ranked by frequency.
func Top(items []listing.Item, n int) []string {
	ranked := top(items, n)
	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Host
	}
	return out
}

// Chips returns the "All" chip followed by the top n host chips.
func Chips(items []listing.Item, n int) []Chip {
	return append([]Chip{{Count: len(items)}}, top(items, n)...)
}

func top(items []listing.Item, n int) []Chip {
	if n <= 0 {
		n = DefaultLimit
	}
	counts := Counts(items)
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
