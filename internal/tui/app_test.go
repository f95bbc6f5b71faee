package tui

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0Draxy/promotronik/internal/dataset"
	"github.com/0Draxy/promotronik/internal/listing"
	"github.com/0Draxy/promotronik/internal/session"
	"github.com/0Draxy/promotronik/internal/state"
	"github.com/0Draxy/promotronik/internal/view"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testItems() []listing.Item {
	p := 50.0
	return []listing.Item{
		{Title: "Backend Engineer", Link: "https://a.co/1", Published: "2024-01-01"},
		{Title: "DevOps Role", Link: "https://b.co/2", Published: "2024-06-01", PriceNum: &p, Price: "50"},
	}
}

func newTestApp(t *testing.T, store state.Store) (*App, *[]string) {
	t.Helper()
	prefs, err := state.LoadPrefs(store)
	if err != nil {
		t.Fatal(err)
	}
	var opened []string
	a := NewApp(RunOpts{
		Title:    "deals",
		Engine:   view.NewEngine("en"),
		Prefs:    prefs,
		Features: session.AllFeatures(),
		Open: func(link string) error {
			opened = append(opened, link)
			return nil
		},
	})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a.Update(datasetLoadedMsg{items: testItems()})
	return a, &opened
}

func visibleTitles(a *App) []string {
	var out []string
	for _, it := range a.sess.Visible() {
		out = append(out, it.Title)
	}
	return out
}

func TestLoadingState(t *testing.T) {
	prefs, _ := state.LoadPrefs(state.NewMemoryStore())
	a := NewApp(RunOpts{Engine: view.NewEngine("en"), Prefs: prefs, Features: session.AllFeatures()})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	if !strings.Contains(a.View(), "Loading listings") {
		t.Errorf("expected loading indicator, got %q", a.View())
	}
	// keys other than quit are ignored until the load settles
	if _, cmd := a.Update(keys("s")); cmd != nil {
		t.Error("expected no command while loading")
	}
}

func TestLoadCmdReadsDataset(t *testing.T) {
	dir := t.TempDir()
	body := `[{"title":"Lamp","link":"https://shop.example/lamp"}]`
	if err := os.WriteFile(filepath.Join(dir, "data.json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	prefs, _ := state.LoadPrefs(state.NewMemoryStore())
	a := NewApp(RunOpts{
		Loader:   &dataset.Loader{Source: "data.json", BaseDir: dir, Format: dataset.FormatJSON},
		Engine:   view.NewEngine("en"),
		Prefs:    prefs,
		Features: session.AllFeatures(),
	})

	msg, ok := a.loadCmd()().(datasetLoadedMsg)
	if !ok || len(msg.items) != 1 || msg.items[0].Title != "Lamp" {
		t.Fatalf("unexpected load result %#v", msg)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestLoadCmdSetsNoDeadline(t *testing.T) {
	var hasDeadline bool
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		_, hasDeadline = r.Context().Deadline()
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(`[{"title":"Lamp","link":"https://shop.example/lamp"}]`)),
			Request:    r,
		}, nil
	})}
	prefs, _ := state.LoadPrefs(state.NewMemoryStore())
	a := NewApp(RunOpts{
		Loader:   &dataset.Loader{Source: "https://listings.example/data.json", Client: client},
		Engine:   view.NewEngine("en"),
		Prefs:    prefs,
		Features: session.AllFeatures(),
	})

	msg, ok := a.loadCmd()().(datasetLoadedMsg)
	if !ok || len(msg.items) != 1 {
		t.Fatalf("unexpected load result %#v", msg)
	}
	if hasDeadline {
		t.Error("the dataset fetch must not carry a deadline")
	}
}

func TestInitialViewShowsNewestFirst(t *testing.T) {
	a, _ := newTestApp(t, state.NewMemoryStore())

	got := visibleTitles(a)
	if len(got) != 2 || got[0] != "DevOps Role" {
		t.Fatalf("visible = %v", got)
	}
	out := a.View()
	for _, want := range []string{"deals", "All 2", "a.co 1", "2/2 listings", "Most recent"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSearchTypingAndClear(t *testing.T) {
	a, _ := newTestApp(t, state.NewMemoryStore())

	a.Update(keys("/"))
	if a.mode != modeSearch {
		t.Fatal("expected search mode")
	}
	for _, r := range "back" {
		a.Update(keys(string(r)))
	}
	if got := visibleTitles(a); len(got) != 1 || got[0] != "Backend Engineer" {
		t.Fatalf("after typing: %v", got)
	}

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.searchInput.Value() != "" || a.sess.State().Search != "" {
		t.Error("clear did not reset the search")
	}
	if a.mode != modeSearch || !a.searchInput.Focused() {
		t.Error("clear should keep focus on the search field")
	}
	if len(a.sess.Visible()) != 2 {
		t.Errorf("visible after clear = %d", len(a.sess.Visible()))
	}
}

func TestSortAndChipKeys(t *testing.T) {
	a, _ := newTestApp(t, state.NewMemoryStore())

	a.Update(keys("s"))
	if a.sess.State().Sort != view.SortAZ {
		t.Errorf("sort = %s, want az", a.sess.State().Sort)
	}

	a.Update(keys("2"))
	if a.sess.State().Host != "b.co" {
		t.Errorf("host = %q", a.sess.State().Host)
	}
	if got := visibleTitles(a); len(got) != 1 || got[0] != "DevOps Role" {
		t.Errorf("chip view = %v", got)
	}

	a.Update(keys("0"))
	if a.sess.State().Host != "" || len(a.sess.Visible()) != 2 {
		t.Error("0 should select All")
	}

	a.Update(keys("9"))
	if a.sess.State().Host != "" {
		t.Error("out of range chip should be ignored")
	}
}

func TestFavoriteAndThemePersist(t *testing.T) {
	store := state.NewMemoryStore()
	a, _ := newTestApp(t, store)

	a.Update(keys("f"))
	if !a.sess.IsFavorite("https://b.co/2") {
		t.Fatal("favorite not toggled on the selected card")
	}
	if !strings.Contains(a.list.body, "♥") {
		t.Error("list not redrawn with the favorite marker")
	}

	a.Update(keys("t"))
	if a.theme != state.ThemeLight {
		t.Errorf("theme = %s", a.theme)
	}
	if !strings.Contains(a.View(), "🌙") {
		t.Error("light theme should offer the moon glyph")
	}

	b, _ := newTestApp(t, store)
	if !b.sess.IsFavorite("https://b.co/2") || b.theme != state.ThemeLight {
		t.Error("preferences not restored on a new session")
	}
}

func TestFavoritesOnlyKey(t *testing.T) {
	a, _ := newTestApp(t, state.NewMemoryStore())
	a.Update(keys("j"))
	a.Update(keys("f"))
	a.Update(keys("F"))

	if got := visibleTitles(a); len(got) != 1 || got[0] != "Backend Engineer" {
		t.Errorf("favorites only = %v", got)
	}
	if !strings.Contains(a.View(), "♥ only") {
		t.Error("status bar should flag the favorites view")
	}
}

func TestOpenSelectedLink(t *testing.T) {
	a, opened := newTestApp(t, state.NewMemoryStore())
	a.Update(keys("j"))

	_, cmd := a.Update(keys("o"))
	if cmd == nil {
		t.Fatal("expected an open command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("unexpected message %#v", msg)
	}
	if len(*opened) != 1 || (*opened)[0] != "https://a.co/1" {
		t.Errorf("opened = %v", *opened)
	}
}

func TestHelpToggle(t *testing.T) {
	a, _ := newTestApp(t, state.NewMemoryStore())
	a.Update(keys("?"))
	if !strings.Contains(a.View(), "keyboard shortcuts") {
		t.Error("help not shown")
	}
	a.Update(keys("?"))
	if a.mode != modeNormal {
		t.Error("help not closed")
	}
}
