package render

import (
	"time"

	"github.com/0Draxy/promotronik/internal/listing"
)

// Target turns a full list of cards into output. Every call regenerates the
// whole list.
type Target interface {
	Render(cards []Card) (string, error)
}

// Frame is one rendered list plus the favorite toggles it exposes.
type Frame struct {
	Output   string
	Cards    []Card
	bindings []string
}

// Render builds the cards for items and renders them with t.
func Render(t Target, items []listing.Item, favs map[string]bool, opts Options) (Frame, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	cards := Cards(items, favs, opts)
	out, err := t.Render(cards)
	if err != nil {
		return Frame{}, err
	}

	f := Frame{Output: out, Cards: cards}
	if opts.Favorites {
		f.bindings = make([]string, len(cards))
		for i, c := range cards {
			f.bindings[i] = c.Link
		}
	}
	return f, nil
}

// Bind attaches fn to every favorite toggle of the frame. Toggles from a
// previous frame are gone once a new frame is rendered, so callers bind after
// each Render.
func (f Frame) Bind(fn func(pos int, link string)) {
	for i, link := range f.bindings {
		fn(i, link)
	}
}

// Toggles reports how many favorite toggles the frame exposes.
func (f Frame) Toggles() int { return len(f.bindings) }
