package render

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/0Draxy/promotronik/internal/listing"
)

// Link attributes carried by every outbound link: no link authority, no
// implicit trust, new browsing context.
const (
	LinkRel    = "nofollow sponsored noopener"
	LinkTarget = "_blank"
)

// DefaultFaviconURL is the icon lookup; {host} is replaced by the item host.
const DefaultFaviconURL = "https://www.google.com/s2/favicons?domain={host}&sz=32"

// DefaultCTALabel is the call-to-action text.
const DefaultCTALabel = "View deal →"

// Card is the display model of one item.
type Card struct {
	Title    string
	Link     string
	Rel      string
	Target   string
	Host     string
	Favicon  string
	Summary  string
	Image    string
	Recency  string
	Source   string
	Price    string
	Favorite bool
	CTALabel string
	CTALink  string
}

// Options controls card construction.
type Options struct {
	// Now anchors relative dates; zero means time.Now.
	Now        time.Time
	FaviconURL string
	CTALabel   string
	// Favorites enables the favorite affordance.
	Favorites bool
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Cards maps items to cards in order. favs is the current favorite set.
func Cards(items []listing.Item, favs map[string]bool, opts Options) []Card {
	tpl := opts.FaviconURL
	if tpl == "" {
		tpl = DefaultFaviconURL
	}
	cta := opts.CTALabel
	if cta == "" {
		cta = DefaultCTALabel
	}
	now := opts.now()

	cards := make([]Card, len(items))
	for i, it := range items {
		host, _ := it.Host()
		c := Card{
			Title:    it.Title,
			Link:     it.Link,
			Rel:      LinkRel,
			Target:   LinkTarget,
			Host:     host,
			Summary:  it.Summary,
			Image:    it.Image,
			Recency:  recencyLabel(it, now),
			Source:   it.Source,
			Price:    it.PriceLabel(),
			Favorite: opts.Favorites && favs[it.Link],
			CTALabel: cta,
			CTALink:  it.Link,
		}
		if host != "" {
			c.Favicon = FaviconURL(tpl, host)
		}
		cards[i] = c
	}
	return cards
}

// FaviconURL fills the {host} placeholder of tpl.
func FaviconURL(tpl, host string) string {
	return strings.ReplaceAll(tpl, "{host}", url.QueryEscape(host))
}

func recencyLabel(it listing.Item, now time.Time) string {
	if it.PublishedHuman != "" {
		return it.PublishedHuman
	}
	if !it.HasPublished() {
		return ""
	}
	return relativeTime(it.PublishedTime(), now)
}

func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
