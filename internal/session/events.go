package session

import "github.com/0Draxy/promotronik/internal/view"

// EventKind identifies a user action.
type EventKind int

const (
	KindSearchChanged EventKind = iota
	KindSearchCleared
	KindSortChanged
	KindChipSelected
	KindFavoriteToggled
	KindThemeToggled
	KindFavoritesOnlyToggled
)

func (k EventKind) String() string {
	switch k {
	case KindSearchChanged:
		return "search"
	case KindSearchCleared:
		return "clear"
	case KindSortChanged:
		return "sort"
	case KindChipSelected:
		return "chip"
	case KindFavoriteToggled:
		return "favorite"
	case KindThemeToggled:
		return "theme"
	case KindFavoritesOnlyToggled:
		return "favorites-only"
	default:
		return "unknown"
	}
}

// Event is a user action fed to Session.Dispatch.
type Event interface {
	Kind() EventKind
}

// SearchChanged carries the full text of the search field.
type SearchChanged struct{ Term string }

// SearchCleared empties the search field.
type SearchCleared struct{}

// SortChanged selects a sort mode.
type SortChanged struct{ Mode view.SortMode }

// ChipSelected activates a host chip; an empty Host is the "All" chip.
type ChipSelected struct{ Host string }

// FavoriteToggled flips the favorite state of one link.
type FavoriteToggled struct{ Link string }

// ThemeToggled flips between dark and light.
type ThemeToggled struct{}

// FavoritesOnlyToggled restricts the view to favorites, or lifts it.
type FavoritesOnlyToggled struct{}

func (SearchChanged) Kind() EventKind { return KindSearchChanged }
func (SearchCleared) Kind() EventKind { return KindSearchCleared }
func (SortChanged) Kind() EventKind { return KindSortChanged }
func (ChipSelected) Kind() EventKind { return KindChipSelected }
func (FavoriteToggled) Kind() EventKind { return KindFavoriteToggled }
func (ThemeToggled) Kind() EventKind { return KindThemeToggled }
func (FavoritesOnlyToggled) Kind() EventKind { return KindFavoritesOnlyToggled }
