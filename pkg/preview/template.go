package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/chatlist/pkg/layoutopts"
)

// avatarWidth is the gutter taken by an avatar or its padding.
const avatarWidth = 5

// Template is the resolved look of every row sharing one set of options.
type Template struct {
	Options  layoutopts.Options
	Body     lipgloss.Style
	Position lipgloss.Position
	Gutter   int
}

func buildTemplate(styles *Styles, options layoutopts.Options) *Template {
	tpl := &Template{Options: options, Position: lipgloss.Left}

	switch {
	case options.Contains(layoutopts.Centered):
		tpl.Body = styles.System
		tpl.Position = lipgloss.Center
		return tpl
	case options.Contains(layoutopts.Bubble):
		if options.Contains(layoutopts.Flipped) {
			tpl.Body = styles.OutgoingBubble
		} else {
			tpl.Body = styles.IncomingBubble
		}
		continuous := options.Contains(layoutopts.ContinuousBubble)
		tpl.Body = tpl.Body.Border(lipgloss.RoundedBorder(), true, true, !continuous, true)
	default:
		tpl.Body = styles.Jumbomoji
	}

	if options.Contains(layoutopts.Flipped) {
		tpl.Position = lipgloss.Right
	}
	if options.Contains(layoutopts.Avatar) || options.Contains(layoutopts.AvatarSizePadding) {
		tpl.Gutter = avatarWidth
	}
	return tpl
}
