package view

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/0Draxy/promotronik/internal/listing"
)

// Engine derives the visible subset from the full collection. It keeps no
// state between calls, so identical inputs always give the same output.
type Engine struct {
	collator  *collate.Collator
	priceSort bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithPriceSort enables or disables the price sort capability. When disabled,
// SortPrice behaves like SortRecent.
func WithPriceSort(enabled bool) Option {
	return func(e *Engine) { e.priceSort = enabled }
}

// NewEngine creates an engine comparing titles with the collation rules of
// locale. An unparseable locale falls back to English.
func NewEngine(locale string, opts ...Option) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	e := &Engine{
		collator:  collate.New(tag),
		priceSort: true,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Apply filters then sorts items for the given state. The input slice is
// never modified.
func (e *Engine) Apply(items []listing.Item, st State) []listing.Item {
	out := Filter(items, st)
	e.Sort(out, st.Sort)
	return out
}

// Filter returns the items selected by st, in input order.
func Filter(items []listing.Item, st State) []listing.Item {
	out := make([]listing.Item, 0, len(items))
	if st.Host != "" {
		for _, it := range items {
			if strings.Contains(it.Link, st.Host) {
				out = append(out, it)
			}
		}
		return out
	}

	term := strings.ToLower(st.Search)
	for _, it := range items {
		if MatchesSearch(it, term) {
			out = append(out, it)
		}
	}
	return out
}

// MatchesSearch reports whether a lowercased term occurs in the title,
// summary, or source of it.
func MatchesSearch(it listing.Item, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), term) ||
		strings.Contains(strings.ToLower(it.Summary), term) ||
		strings.Contains(strings.ToLower(it.Source), term)
}

// Sort orders items in place. The sort is stable.
func (e *Engine) Sort(items []listing.Item, mode SortMode) {
	if mode == SortPrice && !e.priceSort {
		mode = SortRecent
	}

	switch mode {
	case SortAZ:
		sort.SliceStable(items, func(i, j int) bool {
			return e.collator.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			return priceKey(items[i]) < priceKey(items[j])
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PublishedTime().After(items[j].PublishedTime())
		})
	}
}

// CompareTitles exposes the engine's collation for callers that check order.
func (e *Engine) CompareTitles(a, b string) int {
	return e.collator.CompareString(a, b)
}

func priceKey(it listing.Item) float64 {
	if it.PriceNum == nil {
		return math.Inf(1)
	}
	return *it.PriceNum
}
