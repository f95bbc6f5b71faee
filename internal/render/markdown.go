package render

import (
	"bytes"
	"fmt"

	"github.com/nao1215/markdown"
)

// Markdown renders cards as a digest document.
type Markdown struct {
	Title     string
	Favorites bool
}

func (m Markdown) Render(cards []Card) (string, error) {
	title := m.Title
	if title == "" {
		title = "promotronik"
	}

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)
	md.H1(title)
	md.PlainText("")

	if len(cards) == 0 {
		md.PlainText("No listings.")
		if err := md.Build(); err != nil {
			return "", fmt.Errorf("rendering markdown: %w", err)
		}
		return buf.String(), nil
	}

	for _, c := range cards {
		heading := markdown.Link(c.Title, c.Link)
		if m.Favorites && c.Favorite {
			heading = "♥ " + heading
		}
		md.H2(heading)
		md.PlainText("")
		if c.Summary != "" {
			md.PlainText(c.Summary)
			md.PlainText("")
		}

		var meta []string
		if c.Recency != "" {
			meta = append(meta, "Published: "+c.Recency)
		}
		if c.Source != "" {
			meta = append(meta, "Source: "+c.Source)
		}
		if c.Host != "" {
			meta = append(meta, "Host: "+c.Host)
		}
		if c.Price != "" {
			meta = append(meta, "Price: "+markdown.Bold(c.Price))
		}
		if len(meta) > 0 {
			md.BulletList(meta...)
			md.PlainText("")
		}
		md.PlainText(markdown.Link(c.CTALabel, c.CTALink))
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
