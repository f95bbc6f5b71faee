package listing

import (
	"net/url"
	"strings"
	"time"
)

// Item is one posting from the snapshot. Empty strings mean the field was
// absent; PriceNum is nil when no numeric price was given.
type Item struct {
	Title          string   `json:"title"`
	Link           string   `json:"link"`
	Summary        string   `json:"summary,omitempty"`
	Source         string   `json:"source,omitempty"`
	Published      string   `json:"published,omitempty"`
	PublishedHuman string   `json:"published_human,omitempty"`
	Price          string   `json:"price,omitempty"`
	PriceNum       *float64 `json:"price_num,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	Image          string   `json:"image,omitempty"`
}

var epoch = time.Unix(0, 0).UTC()

var publishedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Normalize fills defaults on a freshly loaded snapshot. A zero price_num is
// treated as absent. Source fields are left untouched and order is kept.
func Normalize(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.PriceNum != nil && *it.PriceNum == 0 {
			it.PriceNum = nil
		}
		out[i] = it
	}
	return out
}

// PublishedTime parses Published. Missing or unparseable dates map to the
// Unix epoch so they sort as the oldest.
func (it Item) PublishedTime() time.Time {
	t, _ := it.parsePublished()
	return t
}

// HasPublished reports whether Published parses to a date. A date equal to
// the epoch still counts.
func (it Item) HasPublished() bool {
	_, ok := it.parsePublished()
	return ok
}

func (it Item) parsePublished() (time.Time, bool) {
	s := strings.TrimSpace(it.Published)
	if s == "" {
		return epoch, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return epoch, false
}

// Host returns the lowercased network location of Link without a leading
// "www.".
func (it Item) Host() (string, bool) {
	return HostOf(it.Link)
}

// HostOf extracts the lowercased host from a link. Links without a scheme
// and host are rejected.
func HostOf(link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www."), true
}

// PriceLabel is the display badge, e.g. "49,99 EUR".
func (it Item) PriceLabel() string {
	if it.Price == "" {
		return ""
	}
	if it.Currency == "" {
		return it.Price
	}
	return it.Price + " " + it.Currency
}
