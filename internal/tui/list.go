package tui

import (
	"github.com/0Draxy/promotronik/internal/render"
	"github.com/0Draxy/promotronik/internal/session"
)

// listPane holds the last rendered list and the favorite toggles bound to it.
type listPane struct {
	body    string
	toggles []string
}

// redraw regenerates the whole list and rebinds the favorite toggles; the
// previous frame's toggles are dropped.
func (p *listPane) redraw(sess *session.Session, t render.Terminal, opts render.Options) error {
	frame, err := sess.Render(t, opts)
	if err != nil {
		return err
	}
	p.body = frame.Output
	p.toggles = p.toggles[:0]
	frame.Bind(func(_ int, link string) {
		p.toggles = append(p.toggles, link)
	})
	return nil
}

// toggleAt returns the link bound to the toggle at pos.
func (p *listPane) toggleAt(pos int) (string, bool) {
	if pos < 0 || pos >= len(p.toggles) {
		return "", false
	}
	return p.toggles[pos], true
}

// listHeight is the room left for cards once the header, chip row, search
// field, and status bar are drawn.
func listHeight(total int, chips bool) int {
	h := total - 4
	if chips {
		h--
	}
	if h < 5 {
		h = 5
	}
	return h
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
