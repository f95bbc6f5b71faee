package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/0Draxy/promotronik/internal/hosts"
	"github.com/0Draxy/promotronik/internal/render"
)

// chipBar is the row of host chips. Index 0 is always "All".
type chipBar struct {
	chips  []hosts.Chip
	active int
}

func newChipBar(chips []hosts.Chip) chipBar {
	return chipBar{chips: chips}
}

// selectIndex activates chip i and returns its host. ok is false when i is
// out of range.
func (c *chipBar) selectIndex(i int) (host string, ok bool) {
	if i < 0 || i >= len(c.chips) {
		return "", false
	}
	c.active = i
	return c.chips[i].Host, true
}

// next cycles to the following chip, wrapping to "All".
func (c *chipBar) next() (string, bool) {
	if len(c.chips) == 0 {
		return "", false
	}
	return c.selectIndex((c.active + 1) % len(c.chips))
}

func (c *chipBar) activeLabel() string {
	if c.active >= len(c.chips) {
		return "All"
	}
	return c.chips[c.active].Label()
}

func (c *chipBar) render(s render.Styles, width int) string {
	if len(c.chips) == 0 {
		return ""
	}
	sep := s.ChipSep.Render(" · ")

	var row string
	for i, chip := range c.chips {
		style := s.ChipOff
		if i == c.active {
			style = s.ChipOn
		}
		part := style.Render(fmt.Sprintf("%d %s %d", i, chip.Label(), chip.Count))

		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width-2 && row != "" {
			break
		}
		row = candidate
	}
	return s.Bar.Width(width).Render(row)
}
