package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/killallgit/chatlist/pkg/chat"
	"github.com/killallgit/chatlist/pkg/layoutopts"
	"github.com/killallgit/chatlist/pkg/listlayout"
	"github.com/killallgit/chatlist/pkg/logger"
	"github.com/killallgit/chatlist/pkg/templates"
)

// Config sizes a Timeline. Heights are in terminal lines.
type Config struct {
	Width               int
	Height              int
	EstimatedItemHeight float64
	Spacing             float64
	TemplateCacheSize   int
	// Now is the reference time of relative timestamps; zero means the
	// wall clock.
	Now time.Time
}

func DefaultConfig() Config {
	return Config{
		Width:               80,
		Height:              24,
		EstimatedItemHeight: 4,
		Spacing:             1,
		TemplateCacheSize:   templates.DefaultSize,
	}
}

// Timeline is a scrollable message list drawn into a fixed size frame.
type Timeline struct {
	cfg      Config
	renderer *Renderer
	host     *listlayout.Host
	channel  chat.Channel
	messages chat.List
}

func NewTimeline(cfg Config, resolver *layoutopts.Resolver) (*Timeline, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", cfg.Width, cfg.Height)
	}
	cache, err := templates.New[*Template](cfg.TemplateCacheSize)
	if err != nil {
		return nil, err
	}
	renderer := NewRenderer(resolver, cache, cfg.Width)
	if !cfg.Now.IsZero() {
		renderer.SetNow(cfg.Now)
	}
	t := &Timeline{cfg: cfg, renderer: renderer}
	t.host = t.newHost()
	return t, nil
}

func (t *Timeline) newHost() *listlayout.Host {
	engine := listlayout.NewEngine(listlayout.Config{
		EstimatedItemHeight: t.cfg.EstimatedItemHeight,
		Spacing:             t.cfg.Spacing,
	})
	return listlayout.NewHost(engine, listlayout.Viewport{
		Width:  float64(t.cfg.Width),
		Height: float64(t.cfg.Height),
	})
}

// Host exposes the layout driver, mostly for inspection.
func (t *Timeline) Host() *listlayout.Host {
	return t.host
}

func (t *Timeline) Messages() chat.List {
	return t.messages
}

func (t *Timeline) sizer() listlayout.Sizer {
	return func(index int) (float64, bool) {
		if index < 0 || index >= t.messages.Len() {
			return 0, false
		}
		return float64(t.renderer.Height(index, t.channel, t.messages)), true
	}
}

// Load shows a new channel, scrolled to its most recent message.
func (t *Timeline) Load(channel chat.Channel, messages chat.List) {
	t.channel = channel
	t.messages = messages
	t.host = t.newHost()
	t.host.Load(messages.Len(), t.sizer())
	t.host.ScrollToBottom()
	logger.Debug("preview: loaded %d messages of channel %s", messages.Len(), channel.ID)
}

// Apply replaces the message list, animating the difference as one batch.
// Rows whose drawing changed are reloaded in place.
func (t *Timeline) Apply(messages chat.List) listlayout.BatchResult {
	previous := t.messages
	updates := listlayout.Changes(previous.IDs(), messages.IDs())

	var reloads []listlayout.Update
	for newIndex, id := range messages.IDs() {
		oldIndex := previous.Index(id)
		if oldIndex < 0 {
			continue
		}
		if t.renderer.Render(oldIndex, t.channel, previous) != t.renderer.Render(newIndex, t.channel, messages) {
			reloads = append(reloads, listlayout.Update{Action: listlayout.ActionReload, Before: oldIndex, After: newIndex})
		}
	}
	updates = append(updates, reloads...)

	t.messages = messages
	result := t.host.PerformBatchUpdates(updates, t.sizer())
	logger.Debug("preview: applied %d updates, %d appearing, %d disappearing",
		len(updates), len(result.Appearing), len(result.Disappearing))
	return result
}

// Resize changes the frame size. Rows are measured again when the width
// changes since text wraps differently.
func (t *Timeline) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	t.cfg.Width, t.cfg.Height = width, height
	widthChanged := t.renderer.Width() != width
	t.renderer.SetWidth(width)
	t.host.Resize(listlayout.Size{Width: float64(width), Height: float64(height)})

	if widthChanged {
		sizer := t.sizer()
		for i := 0; i < t.host.Engine.Count(); i++ {
			if h, ok := sizer(i); ok {
				t.host.SetPreferredHeight(i, h)
			}
		}
		t.host.ScrollBy(0)
	}
}

// ScrollBy scrolls by lines; negative values reveal older messages.
func (t *Timeline) ScrollBy(lines int) {
	t.host.ScrollBy(float64(lines))
}

func (t *Timeline) ScrollToBottom() {
	t.host.ScrollToBottom()
}

// Frame draws the visible window. Content shorter than the frame sits at the
// bottom.
func (t *Timeline) Frame() string {
	height := t.cfg.Height
	canvas := make([]string, height)

	viewport := t.host.Viewport
	pad := 0
	if content := int(t.host.Engine.ContentHeight()); content < height {
		pad = height - content
	}

	for _, attr := range t.host.VisibleAttributes() {
		row := t.renderer.Render(attr.Index, t.channel, t.messages)
		top := int(attr.Offset-viewport.ContentOffset) + pad
		for k, line := range strings.Split(row, "\n") {
			y := top + k
			if y < 0 || y >= height {
				continue
			}
			canvas[y] = line
		}
	}
	return strings.Join(canvas, "\n")
}
