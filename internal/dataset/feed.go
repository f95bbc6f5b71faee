package dataset

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/0Draxy/promotronik/internal/listing"
)

const summaryLimit = 300

// parseFeed maps an RSS or Atom snapshot onto items. Entries keep the feed's
// order; the source label is the feed's own host.
func parseFeed(ctx context.Context, r io.Reader) ([]listing.Item, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	source := feedHost(feed)
	items := make([]listing.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		link := entry.Link
		if link == "" {
			link = entry.GUID
		}

		desc := entry.Description
		if desc == "" {
			desc = entry.Content
		}

		it := listing.Item{
			Title:   strings.TrimSpace(entry.Title),
			Link:    link,
			Summary: truncate(stripHTML(desc), summaryLimit),
			Source:  source,
		}

		var pub *time.Time
		if entry.PublishedParsed != nil {
			pub = entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			pub = entry.UpdatedParsed
		}
		if pub != nil {
			it.Published = pub.UTC().Format(time.RFC3339)
			it.PublishedHuman = pub.Format("2006-01-02 15:04")
		}

		if img := entryImage(entry); img != "" {
			it.Image = img
		}
		items = append(items, it)
	}
	return items, nil
}

func feedHost(feed *gofeed.Feed) string {
	for _, raw := range []string{feed.FeedLink, feed.Link} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return feed.Title
}

func entryImage(entry *gofeed.Item) string {
	if entry.Image != nil && entry.Image.URL != "" {
		return entry.Image.URL
	}
	for _, enc := range entry.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
