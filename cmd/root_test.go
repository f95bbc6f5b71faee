package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0Draxy/promotronik/internal/config"
	"github.com/0Draxy/promotronik/internal/logging"
	"github.com/0Draxy/promotronik/internal/render"
	"github.com/0Draxy/promotronik/internal/state"
)

const testDataset = `[
  {"title": "Backend Engineer", "link": "https://a.co/1", "published": "2024-01-01"},
  {"title": "DevOps Role", "link": "https://b.co/2", "published": "2024-06-01", "price": "50 €", "price_num": 50},
  {"title": "DevOps Lead", "link": "https://a.co/3", "published": "2024-03-01"}
]`

// setup writes a config and dataset into a temp dir and returns the config
// path and the state database path.
func setup(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.db")
	cfg := "title: deals\n" +
		"dataset:\n  source: data.json\n  format: json\n" +
		"state_path: " + statePath + "\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data.json"), []byte(testDataset), 0o644); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "config.yaml"), statePath
}

func resetFlags() {
	flagConfig, flagDebug, flagEphemeral = "", false, false
	listFlags = viewFlags{sort: "recent"}
	flagListTheme, flagListWidth = "", 100
	exportFlags = viewFlags{sort: "recent"}
	flagExportFormat, flagExportOutput = "html", ""
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	cfgPath, _ := setup(t)

	out, err := run(t, "list", "--config", cfgPath, "--search", "devops")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "DevOps Role") || !strings.Contains(out, "DevOps Lead") {
		t.Errorf("missing matches in %q", out)
	}
	if strings.Contains(out, "Backend Engineer") {
		t.Errorf("non-matching listing shown in %q", out)
	}
	if strings.Index(out, "DevOps Role") > strings.Index(out, "DevOps Lead") {
		t.Error("expected newest first")
	}
}

func TestListHostOverridesSearch(t *testing.T) {
	cfgPath, _ := setup(t)

	out, err := run(t, "list", "--config", cfgPath, "--search", "devops", "--host", "a.co", "--sort", "az")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Backend Engineer") || strings.Contains(out, "DevOps Role") {
		t.Errorf("host filter not applied: %q", out)
	}
	if strings.Index(out, "Backend Engineer") > strings.Index(out, "DevOps Lead") {
		t.Error("expected alphabetical order")
	}
}

func TestListMissingDatasetIsEmpty(t *testing.T) {
	cfgPath, _ := setup(t)
	if err := os.Remove(filepath.Join(filepath.Dir(cfgPath), "data.json")); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "list", "--config", cfgPath)
	if err != nil {
		t.Fatalf("a missing dataset should not fail: %v", err)
	}
	if !strings.Contains(out, "No listings") {
		t.Errorf("expected empty list, got %q", out)
	}
}

func TestListFavoritesOnly(t *testing.T) {
	cfgPath, statePath := setup(t)

	db, err := state.Open(statePath)
	if err != nil {
		t.Fatal(err)
	}
	prefs, err := state.LoadPrefs(db)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := prefs.ToggleFavorite("https://a.co/3"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	out, err := run(t, "list", "--config", cfgPath, "--favorites")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "DevOps Lead") || strings.Contains(out, "DevOps Role") {
		t.Errorf("favorites view wrong: %q", out)
	}

	out, err = run(t, "favorites", "--config", cfgPath)
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if strings.TrimSpace(out) != "https://a.co/3" {
		t.Errorf("favorites = %q", out)
	}
}

func TestFavoritesEmpty(t *testing.T) {
	cfgPath, _ := setup(t)
	out, err := run(t, "favorites", "--config", cfgPath)
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if !strings.Contains(out, "No favorites yet.") {
		t.Errorf("got %q", out)
	}
}

func TestExportMarkdownToFile(t *testing.T) {
	cfgPath, _ := setup(t)
	dest := filepath.Join(t.TempDir(), "deals.md")

	out, err := run(t, "export", "--config", cfgPath, "--format", "markdown", "-o", dest)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Wrote 3 listing(s)") {
		t.Errorf("unexpected output %q", out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if !strings.Contains(doc, "# deals") || !strings.Contains(doc, "https://b.co/2") {
		t.Errorf("export missing content: %q", doc)
	}
}

func TestExportHTMLToStdout(t *testing.T) {
	cfgPath, _ := setup(t)

	out, err := run(t, "export", "--config", cfgPath, "--sort", "price")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, `rel="nofollow sponsored noopener"`) {
		t.Error("links missing rel attribute")
	}
	if strings.Index(out, "DevOps Role") > strings.Index(out, "Backend Engineer") {
		t.Error("priced listing should come first")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	cfgPath, _ := setup(t)
	if _, err := run(t, "export", "--config", cfgPath, "--format", "pdf"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestThemeCommand(t *testing.T) {
	cfgPath, _ := setup(t)

	out, err := run(t, "theme", "--config", cfgPath)
	if err != nil || strings.TrimSpace(out) != "dark" {
		t.Fatalf("default theme = %q, %v", out, err)
	}
	if _, err := run(t, "theme", "light", "--config", cfgPath); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	out, _ = run(t, "theme", "--config", cfgPath)
	if strings.TrimSpace(out) != "light" {
		t.Errorf("theme not persisted, got %q", out)
	}
	if _, err := run(t, "theme", "blue", "--config", cfgPath); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestThemeEphemeral(t *testing.T) {
	cfgPath, _ := setup(t)
	if _, err := run(t, "theme", "light", "--ephemeral", "--config", cfgPath); err != nil {
		t.Fatal(err)
	}
	out, _ := run(t, "theme", "--config", cfgPath)
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("ephemeral run leaked its theme: %q", out)
	}
}

func TestStatsCommand(t *testing.T) {
	cfgPath, _ := setup(t)
	out, err := run(t, "stats", "--config", cfgPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Listings: 3", "Favorites: 0", "Theme: dark", "a.co", "b.co"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats missing %q in %q", want, out)
		}
	}
}

func TestStatsHonorsChipLimit(t *testing.T) {
	cfgPath, _ := setup(t)
	t.Setenv("PROMOTRONIK_CHIPS", "1")

	out, err := run(t, "stats", "--config", cfgPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "a.co") || strings.Contains(out, "b.co") {
		t.Errorf("expected only the top host, got %q", out)
	}
}

func TestLoaderHasNoTimeout(t *testing.T) {
	cfgPath, _ := setup(t)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	e := &env{cfg: cfg, logger: logging.Discard()}

	l := e.loader()
	if l.Client == nil || l.Client.Timeout != 0 {
		t.Errorf("loader client must not time out, got %+v", l.Client)
	}
	if got := e.load(context.Background()); len(got) != 3 {
		t.Errorf("load = %d items, want 3", len(got))
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	defer SetVersionInfo("dev", "none", "unknown")

	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "promotronik 1.2.3 (commit: abc") {
		t.Errorf("got %q", out)
	}
}

func TestExportTarget(t *testing.T) {
	tests := []struct {
		format  string
		want    render.Target
		wantErr bool
	}{
		{"html", render.HTML{Title: "t", Theme: "light", Favorites: true}, false},
		{"HTML", render.HTML{Title: "t", Theme: "light", Favorites: true}, false},
		{"markdown", render.Markdown{Title: "t", Favorites: true}, false},
		{"md", render.Markdown{Title: "t", Favorites: true}, false},
		{"pdf", nil, true},
	}
	for _, tt := range tests {
		got, err := exportTarget(tt.format, "t", state.ThemeLight, true)
		if (err != nil) != tt.wantErr {
			t.Errorf("exportTarget(%q) error = %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("exportTarget(%q) = %#v, want %#v", tt.format, got, tt.want)
		}
	}
}
