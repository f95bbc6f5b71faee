package session

import (
	"fmt"

	"github.com/0Draxy/promotronik/internal/hosts"
	"github.com/0Draxy/promotronik/internal/listing"
	"github.com/0Draxy/promotronik/internal/render"
	"github.com/0Draxy/promotronik/internal/state"
	"github.com/0Draxy/promotronik/internal/view"
)

// Features are the optional capabilities of a session.
type Features struct {
	Favorites bool
	PriceSort bool
	Chips     bool
	ChipLimit int
}

// AllFeatures enables everything with the default chip count.
func AllFeatures() Features {
	return Features{Favorites: true, PriceSort: true, Chips: true, ChipLimit: hosts.DefaultLimit}
}

// Update describes what an event changed.
type Update struct {
	State view.State
	// Reselected is set when the visible list was recomputed.
	Reselected bool
	// Refocus asks the UI to put focus back on the search field.
	Refocus bool
	// Patched is the link whose card changed in place.
	Patched  string
	Favorite bool
	Theme    state.Theme
}

type handler func(s *Session, ev Event) (Update, error)

var dispatch = map[EventKind]handler{
	KindSearchChanged: func(s *Session, ev Event) (Update, error) {
		return s.reselect(s.state.WithSearch(ev.(SearchChanged).Term)), nil
	},
	KindSearchCleared: func(s *Session, _ Event) (Update, error) {
		u := s.reselect(s.state.WithSearch(""))
		u.Refocus = true
		return u, nil
	},
	KindSortChanged: func(s *Session, ev Event) (Update, error) {
		return s.reselect(s.state.WithSort(s.sortMode(ev.(SortChanged).Mode))), nil
	},
	KindChipSelected: func(s *Session, ev Event) (Update, error) {
		if !s.features.Chips {
			return s.unchanged(), nil
		}
		return s.reselect(s.state.WithHost(ev.(ChipSelected).Host)), nil
	},
	KindFavoriteToggled: func(s *Session, ev Event) (Update, error) {
		if !s.features.Favorites {
			return s.unchanged(), nil
		}
		link := ev.(FavoriteToggled).Link
		on, err := s.prefs.ToggleFavorite(link)
		if err != nil {
			return s.unchanged(), err
		}
		u := s.unchanged()
		if s.favoritesOnly {
			u = s.reselect(s.state)
		}
		u.Patched = link
		u.Favorite = on
		return u, nil
	},
	KindThemeToggled: func(s *Session, _ Event) (Update, error) {
		_, err := s.prefs.ToggleTheme()
		return s.unchanged(), err
	},
	KindFavoritesOnlyToggled: func(s *Session, _ Event) (Update, error) {
		if !s.features.Favorites {
			return s.unchanged(), nil
		}
		s.favoritesOnly = !s.favoritesOnly
		return s.reselect(s.state), nil
	},
}

// Session owns the loaded items and the current UI state, and maps events to
// state transitions.
type Session struct {
	items    []listing.Item
	chips    []hosts.Chip
	engine   *view.Engine
	prefs    *state.Prefs
	features Features

	state         view.State
	favoritesOnly bool
	visible       []listing.Item
}

// New starts a session on a loaded collection. Chips are computed once here.
func New(items []listing.Item, engine *view.Engine, prefs *state.Prefs, features Features) *Session {
	s := &Session{
		items:    items,
		engine:   engine,
		prefs:    prefs,
		features: features,
		state:    view.Initial(),
	}
	if features.Chips {
		s.chips = hosts.Chips(items, features.ChipLimit)
	}
	s.visible = s.selectVisible(s.state)
	return s
}

// Dispatch applies ev and reports what changed.
func (s *Session) Dispatch(ev Event) (Update, error) {
	h, ok := dispatch[ev.Kind()]
	if !ok {
		return s.unchanged(), fmt.Errorf("no handler for %s event", ev.Kind())
	}
	return h(s, ev)
}

func (s *Session) State() view.State { return s.state }
func (s *Session) Visible() []listing.Item { return s.visible }
func (s *Session) Chips() []hosts.Chip { return s.chips }
func (s *Session) Items() []listing.Item { return s.items }
func (s *Session) Features() Features { return s.features }
func (s *Session) Theme() state.Theme { return s.prefs.Theme() }
func (s *Session) FavoritesOnly() bool { return s.favoritesOnly }
func (s *Session) IsFavorite(link string) bool {
	return s.features.Favorites && s.prefs.IsFavorite(link)
}

// SortModes lists the modes available with the session's features.
func (s *Session) SortModes() []view.SortMode {
	var out []view.SortMode
	for _, m := range view.SortModes() {
		if m == view.SortPrice && !s.features.PriceSort {
			continue
		}
		out = append(out, m)
	}
	return out
}

// NextSort returns the mode after the current one, wrapping around.
func (s *Session) NextSort() view.SortMode {
	modes := s.SortModes()
	for i, m := range modes {
		if m == s.state.Sort {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

// Render draws the visible list with t. The returned frame carries the
// favorite toggles that must be bound again by the caller.
func (s *Session) Render(t render.Target, opts render.Options) (render.Frame, error) {
	opts.Favorites = s.features.Favorites
	var favs map[string]bool
	if s.features.Favorites {
		favs = s.prefs.FavoriteSet()
	}
	return render.Render(t, s.visible, favs, opts)
}

func (s *Session) sortMode(m view.SortMode) view.SortMode {
	if m == view.SortPrice && !s.features.PriceSort {
		return view.SortRecent
	}
	return view.ParseSortMode(string(m))
}

func (s *Session) reselect(next view.State) Update {
	s.state = next
	s.visible = s.selectVisible(next)
	u := s.unchanged()
	u.Reselected = true
	return u
}

func (s *Session) selectVisible(st view.State) []listing.Item {
	out := s.engine.Apply(s.items, st)
	if !s.favoritesOnly {
		return out
	}
	favs := out[:0]
	for _, it := range out {
		if s.prefs.IsFavorite(it.Link) {
			favs = append(favs, it)
		}
	}
	return favs
}

func (s *Session) unchanged() Update {
	return Update{State: s.state, Theme: s.prefs.Theme()}
}
