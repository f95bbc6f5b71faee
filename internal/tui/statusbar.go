package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/0Draxy/promotronik/internal/render"
)

type statusInfo struct {
	shown         int
	total         int
	sortLabel     string
	chipLabel     string
	favoritesOnly bool
	searching     bool
	loading       bool
}

func renderStatusBar(s render.Styles, info statusInfo, width int) string {
	left := fmt.Sprintf("%d/%d listings · %s", info.shown, info.total, info.sortLabel)
	if info.chipLabel != "" && info.chipLabel != "All" {
		left += " · " + info.chipLabel
	}
	if info.favoritesOnly {
		left += " · " + s.Favorite.Render("♥ only")
	}
	if info.loading {
		left = "loading..."
	}

	right := "/ search  s sort  f fav  t theme  ? help  q quit"
	if info.searching {
		right = "esc clear  enter done"
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return s.Bar.Width(width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}
