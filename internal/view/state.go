package view

import "strings"

// SortMode selects the ordering of the visible list.
type SortMode string

const (
	SortRecent SortMode = "recent"
	SortAZ     SortMode = "az"
	SortPrice  SortMode = "price"
)

// SortModes lists the modes in selector order.
func SortModes() []SortMode {
	return []SortMode{SortRecent, SortAZ, SortPrice}
}

// ParseSortMode maps a selector value to a mode. Unknown values fall back to
// recent, the default.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortAZ:
		return SortAZ
	case SortPrice:
		return SortPrice
	default:
		return SortRecent
	}
}

// Label is the selector text for the mode.
func (m SortMode) Label() string {
	switch m {
	case SortAZ:
		return "A→Z"
	case SortPrice:
		return "Price"
	default:
		return "Most recent"
	}
}

// State is the full input of a selection besides the items themselves.
// A non-empty Host takes precedence over Search.
type State struct {
	Search string
	Sort   SortMode
	Host   string
}

// Initial is the state shown right after load.
func Initial() State {
	return State{Sort: SortRecent}
}

func (s State) WithSearch(term string) State {
	s.Search = term
	return s
}

func (s State) WithSort(m SortMode) State {
	s.Sort = m
	return s
}

func (s State) WithHost(host string) State {
	s.Host = host
	return s
}
