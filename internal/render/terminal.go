package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cardHeight is the number of lines a terminal card takes, separator included.
const cardHeight = 5

// Terminal renders cards for a character terminal.
type Terminal struct {
	Styles Styles
	Width  int
	// Height limits output to a window of cards around Cursor; 0 shows all.
	Height int
	// Cursor marks the selected card; negative means none.
	Cursor int
	// Favorites shows the favorite affordance on every card.
	Favorites bool
}

func (t Terminal) Render(cards []Card) (string, error) {
	width := t.Width
	if width < 20 {
		width = 80
	}
	if len(cards) == 0 {
		return t.Styles.Empty.Render("  No listings"), nil
	}

	start, end := t.window(len(cards))
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(t.card(cards[i], i == t.Cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String(), nil
}

func (t Terminal) window(n int) (int, int) {
	if t.Height <= 0 {
		return 0, n
	}
	visible := (t.Height + 1) / cardHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if t.Cursor >= visible {
		start = t.Cursor - visible + 1
	}
	end := start + visible
	if end > n {
		end = n
		start = end - visible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func (t Terminal) card(c Card, selected bool, width int) string {
	s := t.Styles

	marker := "  "
	titleStyle := s.Title
	if selected {
		marker = "> "
		titleStyle = s.Selected
	}
	fav := ""
	if t.Favorites {
		if c.Favorite {
			fav = s.Favorite.Render("♥") + " "
		} else {
			fav = s.Time.Render("♡") + " "
		}
	}
	title := marker + fav + titleStyle.Render(Truncate(c.Title, width-6))

	summary := "    " + s.Summary.Render(Truncate(c.Summary, width-6))

	var meta []string
	if c.Host != "" {
		meta = append(meta, s.Host.Render(c.Host))
	}
	meta = append(meta, s.Time.Render("🕒 "+c.Recency))
	if c.Source != "" {
		meta = append(meta, s.Source.Render(c.Source))
	}
	line := "    " + strings.Join(meta, s.Time.Render(" • "))
	if c.Price != "" {
		line += " " + s.Price.Render(c.Price)
	}

	cta := "    " + s.CTA.Render(c.CTALabel) + " " + s.Time.Render(Truncate(c.CTALink, width-lipgloss.Width(c.CTALabel)-6))

	return title + "\n" + summary + "\n" + line + "\n" + cta
}

// Truncate shortens s to n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
