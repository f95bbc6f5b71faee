package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/0Draxy/promotronik/internal/listing"
)

// Format identifies how the snapshot is encoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatFeed Format = "feed"
)

// Loader reads the snapshot once and normalizes it.
type Loader struct {
	// Source is an http(s) URL or a file path. Relative paths are resolved
	// against BaseDir.
	Source  string
	BaseDir string
	Format  Format
	Client  *http.Client
	Logger  *slog.Logger
}

// Load reads the source a single time. Any failure yields an empty
// collection; the cause is only reported to the debug log.
func (l *Loader) Load(ctx context.Context) []listing.Item {
	items, err := l.load(ctx)
	if err != nil {
		l.logger().Debug("dataset unavailable", "source", l.Source, "error", err)
		return []listing.Item{}
	}
	l.logger().Debug("dataset loaded", "source", l.Source, "items", len(items))
	return listing.Normalize(items)
}

func (l *Loader) load(ctx context.Context) ([]listing.Item, error) {
	body, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	switch l.Format {
	case FormatFeed:
		return parseFeed(ctx, body)
	case FormatJSON, "":
		return parseJSON(body)
	default:
		return nil, fmt.Errorf("unknown dataset format %q", l.Format)
	}
}

func (l *Loader) open(ctx context.Context) (io.ReadCloser, error) {
	if isRemote(l.Source) {
		return l.get(ctx)
	}
	path := l.Source
	if !filepath.IsAbs(path) && l.BaseDir != "" {
		path = filepath.Join(l.BaseDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	return f, nil
}

func (l *Loader) get(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/rss+xml, application/atom+xml;q=0.9, */*;q=0.8")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching dataset: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.Logger
}

func parseJSON(r io.Reader) ([]listing.Item, error) {
	var items []listing.Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if items == nil {
		return nil, fmt.Errorf("decoding dataset: expected an array")
	}
	return items, nil
}

func isRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	s := strings.ToLower(u.Scheme)
	return s == "http" || s == "https"
}
