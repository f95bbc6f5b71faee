package state

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Storage keys, one flat value each.
const (
	ThemeKey     = "pt_theme"
	FavoritesKey = "pt_favs"
)

// Theme is the color scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Flip returns the other theme.
func (t Theme) Flip() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Glyph is the toggle affordance: the icon of the theme one would switch to.
func (t Theme) Glyph() string {
	if t == ThemeLight {
		return "🌙"
	}
	return "☀️"
}

// ParseTheme accepts "light" and "dark"; anything else is dark.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Prefs holds the theme and favorites, mirrored in memory and written back to
// the store on every change.
type Prefs struct {
	store Store
	theme Theme
	favs  map[string]bool
}

// LoadPrefs reads both values once. Missing or malformed values fall back to
// dark and an empty set.
func LoadPrefs(store Store) (*Prefs, error) {
	p := &Prefs{store: store, theme: ThemeDark, favs: make(map[string]bool)}

	raw, ok, err := store.Get(ThemeKey)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	if ok {
		p.theme = ParseTheme(raw)
	}

	raw, ok, err = store.Get(FavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}
	if ok {
		var links []string
		if json.Unmarshal([]byte(raw), &links) == nil {
			for _, l := range links {
				p.favs[l] = true
			}
		}
	}
	return p, nil
}

func (p *Prefs) Theme() Theme { return p.theme }

func (p *Prefs) SetTheme(t Theme) error {
	t = ParseTheme(string(t))
	if err := p.store.Set(ThemeKey, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	p.theme = t
	return nil
}

// ToggleTheme flips and persists the theme.
func (p *Prefs) ToggleTheme() (Theme, error) {
	next := p.theme.Flip()
	if err := p.SetTheme(next); err != nil {
		return p.theme, err
	}
	return next, nil
}

// Favorites returns the favorite links, sorted.
func (p *Prefs) Favorites() []string {
	out := make([]string, 0, len(p.favs))
	for l := range p.favs {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func (p *Prefs) IsFavorite(link string) bool {
	return p.favs[link]
}

// FavoriteSet returns a copy of the membership set.
func (p *Prefs) FavoriteSet() map[string]bool {
	out := make(map[string]bool, len(p.favs))
	for l := range p.favs {
		out[l] = true
	}
	return out
}

// ToggleFavorite flips membership of link and writes the whole set. It
// returns the new membership.
func (p *Prefs) ToggleFavorite(link string) (bool, error) {
	was := p.favs[link]
	if was {
		delete(p.favs, link)
	} else {
		p.favs[link] = true
	}
	if err := p.saveFavorites(); err != nil {
		if was {
			p.favs[link] = true
		} else {
			delete(p.favs, link)
		}
		return was, err
	}
	return !was, nil
}

func (p *Prefs) saveFavorites() error {
	data, err := json.Marshal(p.Favorites())
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	if err := p.store.Set(FavoritesKey, string(data)); err != nil {
		return fmt.Errorf("saving favorites: %w", err)
	}
	return nil
}
