package preview

import "github.com/charmbracelet/lipgloss"

// Warm palette shared with the rest of the terminal UI.
var (
	ColorForeground = lipgloss.Color("#ab937b")
	ColorLight      = lipgloss.Color("#d3b597")
	ColorMuted      = lipgloss.Color("#5c5044")
	ColorSelection  = lipgloss.Color("#36302a")

	ColorRed    = lipgloss.Color("#d95f5f")
	ColorOrange = lipgloss.Color("#eb8755")
	ColorYellow = lipgloss.Color("#f5b761")
	ColorGreen  = lipgloss.Color("#93b56b")
	ColorBlue   = lipgloss.Color("#6b93b5")
	ColorPurple = lipgloss.Color("#976bb5")
)

// Styles are the base styles templates are derived from.
type Styles struct {
	IncomingBubble lipgloss.Style
	OutgoingBubble lipgloss.Style
	Jumbomoji      lipgloss.Style
	Deleted        lipgloss.Style
	System         lipgloss.Style
	Error          lipgloss.Style
	Author         lipgloss.Style
	Avatar         lipgloss.Style
	Meta           lipgloss.Style
	Quote          lipgloss.Style
	Failure        lipgloss.Style
	OnlyVisible    lipgloss.Style
}

func DefaultStyles() *Styles {
	return &Styles{
		IncomingBubble: lipgloss.NewStyle().
			Foreground(ColorLight).
			BorderForeground(ColorBlue).
			Padding(0, 1),
		OutgoingBubble: lipgloss.NewStyle().
			Foreground(ColorLight).
			BorderForeground(ColorOrange).
			Padding(0, 1),
		Jumbomoji: lipgloss.NewStyle().
			Padding(0, 1),
		Deleted: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		System: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Align(lipgloss.Center),
		Error: lipgloss.NewStyle().
			Foreground(ColorRed).
			Align(lipgloss.Center),
		Author: lipgloss.NewStyle().
			Foreground(ColorPurple).
			Bold(true),
		Avatar: lipgloss.NewStyle().
			Foreground(ColorYellow),
		Meta: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Quote: lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(ColorSelection),
		Failure: lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true),
		OnlyVisible: lipgloss.NewStyle().
			Foreground(ColorGreen).
			Italic(true),
	}
}
