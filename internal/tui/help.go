package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/0Draxy/promotronik/internal/render"
)

func renderHelp(s render.Styles, title string, width, height int) string {
	dim := s.HelpDim
	help := s.Selected.Render(title) + dim.Render(" keyboard shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move between listings\n" +
		"  o, enter      Open listing in browser\n\n" +
		dim.Render("Narrowing") + "\n" +
		"  /             Search title, summary and source\n" +
		"  esc, ctrl+u   Clear search\n" +
		"  s             Cycle sort order\n" +
		"  0-9           Select host chip (0 = All)\n" +
		"  c             Next host chip\n\n" +
		dim.Render("Preferences") + "\n" +
		"  f, space      Toggle favorite\n" +
		"  F             Show favorites only\n" +
		"  t             Toggle dark/light theme\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.HelpCard.Render(help))
}
