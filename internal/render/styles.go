package render

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors for one theme.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Dim       lipgloss.Color
	Accent    lipgloss.Color
	Border    lipgloss.Color
	Green     lipgloss.Color
	Surface   lipgloss.Color
	Badge     lipgloss.Color
	BadgeText lipgloss.Color
}

var (
	darkPalette = Palette{
		Primary:   lipgloss.Color("#7571F9"),
		Secondary: lipgloss.Color("#ABABAB"),
		Dim:       lipgloss.Color("#626262"),
		Accent:    lipgloss.Color("#F25D94"),
		Border:    lipgloss.Color("#383838"),
		Green:     lipgloss.Color("#25D366"),
		Surface:   lipgloss.Color("#2A2A3E"),
		Badge:     lipgloss.Color("#F2C94C"),
		BadgeText: lipgloss.Color("#1A1A1A"),
	}
	lightPalette = Palette{
		Primary:   lipgloss.Color("#5A56E0"),
		Secondary: lipgloss.Color("#3D3D3D"),
		Dim:       lipgloss.Color("#9B9B9B"),
		Accent:    lipgloss.Color("#D83A7C"),
		Border:    lipgloss.Color("#DBDBDB"),
		Green:     lipgloss.Color("#04B575"),
		Surface:   lipgloss.Color("#EEEEEE"),
		Badge:     lipgloss.Color("#B7791F"),
		BadgeText: lipgloss.Color("#FFFFFF"),
	}
)

// PaletteFor returns the palette of a theme name ("light" or "dark").
func PaletteFor(theme string) Palette {
	if theme == "light" {
		return lightPalette
	}
	return darkPalette
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Summary   lipgloss.Style
	Source    lipgloss.Style
	Time      lipgloss.Style
	Host      lipgloss.Style
	Price     lipgloss.Style
	Favorite  lipgloss.Style
	CTA       lipgloss.Style
	ChipOn    lipgloss.Style
	ChipOff   lipgloss.Style
	ChipSep   lipgloss.Style
	Bar       lipgloss.Style
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	Empty     lipgloss.Style
	HelpCard  lipgloss.Style
	HelpDim   lipgloss.Style
	Spinner   lipgloss.Style
	Palette   Palette
}

// NewStyles builds the styles of a theme.
func NewStyles(theme string) Styles {
	p := PaletteFor(theme)
	return Styles{
		Palette: p,
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Summary: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Source: lipgloss.NewStyle().
			Foreground(p.Green),
		Time: lipgloss.NewStyle().
			Foreground(p.Dim),
		Host: lipgloss.NewStyle().
			Foreground(p.Dim).
			Italic(true),
		Price: lipgloss.NewStyle().
			Foreground(p.BadgeText).
			Background(p.Badge).
			Padding(0, 1).
			Bold(true),
		Favorite: lipgloss.NewStyle().
			Foreground(p.Accent),
		CTA: lipgloss.NewStyle().
			Foreground(p.Primary).
			Underline(true),
		ChipOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Primary).
			Padding(0, 1).
			Bold(true),
		ChipOff: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Background(p.Surface).
			Padding(0, 1),
		ChipSep: lipgloss.NewStyle().
			Foreground(p.Dim),
		Bar: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Secondary).
			PaddingLeft(1).
			PaddingRight(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			PaddingLeft(1),
		Prompt: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(p.Dim).
			Italic(true),
		HelpCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 3),
		HelpDim: lipgloss.NewStyle().
			Foreground(p.Dim),
		Spinner: lipgloss.NewStyle().
			Foreground(p.Accent),
	}
}
