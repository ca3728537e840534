// Package preview draws a message list in the terminal using the layout
// options resolver, a template cache and the incremental list layout.
package preview

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/killallgit/chatlist/pkg/chat"
	"github.com/killallgit/chatlist/pkg/layoutopts"
	"github.com/killallgit/chatlist/pkg/templates"
	"github.com/mattn/go-runewidth"
)

// Renderer turns one message into the lines of its row.
type Renderer struct {
	resolver  *layoutopts.Resolver
	templates *templates.Cache[*Template]
	styles    *Styles
	width     int
	now       func() time.Time
}

func NewRenderer(resolver *layoutopts.Resolver, cache *templates.Cache[*Template], width int) *Renderer {
	return &Renderer{
		resolver:  resolver,
		templates: cache,
		styles:    DefaultStyles(),
		width:     width,
		now:       time.Now,
	}
}

// SetNow fixes the reference time of relative timestamps.
func (r *Renderer) SetNow(now time.Time) {
	r.now = func() time.Time { return now }
}

func (r *Renderer) Width() int {
	return r.width
}

func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Height is the number of terminal lines of the row at index.
func (r *Renderer) Height(index int, channel chat.Channel, messages chat.Messages) int {
	return lipgloss.Height(r.Render(index, channel, messages))
}

// Render returns the row of the message at index. A stale index renders as
// a single empty line.
func (r *Renderer) Render(index int, channel chat.Channel, messages chat.Messages) string {
	options := r.resolver.OptionsForMessage(index, channel, messages)
	if options.IsEmpty() {
		return ""
	}
	message := messages.At(index)
	tpl := r.templates.Get(options, func(o layoutopts.Options) *Template {
		return buildTemplate(r.styles, o)
	})

	if options.Contains(layoutopts.Centered) {
		style := tpl.Body
		if message.Type == chat.MessageTypeError {
			style = r.styles.Error
		}
		return style.Width(r.width).Render(message.Text)
	}

	var lines []string
	if options.Contains(layoutopts.AuthorName) {
		lines = append(lines, r.styles.Author.Render(truncate(message.AuthorName, r.maxBubbleWidth())))
	}
	if options.Contains(layoutopts.QuotedMessage) {
		lines = append(lines, r.styles.Quote.Render(truncate("↪ "+message.QuotedMessageID, r.maxBubbleWidth())))
	}
	if body := r.body(tpl, message, options); body != "" {
		lines = append(lines, body)
	}
	if meta := r.annotations(message, options); meta != "" {
		lines = append(lines, r.styles.Meta.Render(truncate(meta, r.maxBubbleWidth())))
	}
	if footer := r.footer(message, options); footer != "" {
		lines = append(lines, footer)
	}
	if len(lines) == 0 {
		return ""
	}

	block := lipgloss.JoinVertical(tpl.Position, lines...)
	if tpl.Gutter > 0 {
		block = lipgloss.JoinHorizontal(lipgloss.Bottom, r.gutter(message, options), block)
	}
	return lipgloss.PlaceHorizontal(r.width, tpl.Position, block)
}

func (r *Renderer) maxBubbleWidth() int {
	w := r.width * 3 / 4
	if w < 8 {
		w = 8
	}
	return w
}

func (r *Renderer) body(tpl *Template, message chat.Message, options layoutopts.Options) string {
	if !options.Contains(layoutopts.Text) {
		return ""
	}
	text := message.Text
	style := tpl.Body
	if message.IsDeleted() {
		text = "message deleted"
		style = style.Inherit(r.styles.Deleted)
	}

	inner := r.maxBubbleWidth() - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	width := 1
	for _, line := range strings.Split(text, "\n") {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	if width > inner {
		width = inner
	}
	return style.Width(width + style.GetHorizontalPadding()).Render(text)
}

// annotations are the reactions and thread summary shown under the body.
func (r *Renderer) annotations(message chat.Message, options layoutopts.Options) string {
	var parts []string
	if options.Contains(layoutopts.Reactions) {
		types := make([]string, 0, len(message.ReactionScores))
		for t := range message.ReactionScores {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			parts = append(parts, fmt.Sprintf("%s %d", t, message.ReactionScores[t]))
		}
	}
	if options.Contains(layoutopts.ThreadInfo) {
		switch {
		case message.ReplyCount == 1:
			parts = append(parts, "1 reply")
		case message.ReplyCount > 1:
			parts = append(parts, fmt.Sprintf("%s replies", humanize.Comma(int64(message.ReplyCount))))
		default:
			parts = append(parts, "in thread")
		}
	}
	return strings.Join(parts, " · ")
}

func (r *Renderer) footer(message chat.Message, options layoutopts.Options) string {
	var parts []string
	if options.Contains(layoutopts.OnlyVisibleToYouIndicator) {
		parts = append(parts, r.styles.OnlyVisible.Render("only visible to you"))
	}
	if options.Contains(layoutopts.ErrorIndicator) {
		parts = append(parts, r.styles.Failure.Render("! failed"))
	}
	if options.Contains(layoutopts.Timestamp) {
		parts = append(parts, r.styles.Meta.Render(humanize.RelTime(message.CreatedAt, r.now(), "ago", "from now")))
	}
	if options.Contains(layoutopts.DeliveryStatusIndicator) && message.DeliveryStatus != nil {
		parts = append(parts, r.styles.Meta.Render(string(*message.DeliveryStatus)))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) gutter(message chat.Message, options layoutopts.Options) string {
	if options.Contains(layoutopts.Avatar) {
		return r.styles.Avatar.Width(avatarWidth).Render("(" + initials(message.AuthorName) + ")")
	}
	return strings.Repeat(" ", avatarWidth)
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, c := range word {
			out = append(out, unicode.ToUpper(c))
			break
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
