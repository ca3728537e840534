// Package listlayout keeps row geometry for a bottom anchored message list
// where row 0 is the most recent message. Geometry survives batch updates:
// rows are shifted rather than recomputed, so the content the user is looking
// at stays put while rows are inserted, removed, moved or resized.
package listlayout

import (
	"sort"

	"github.com/killallgit/chatlist/pkg/logger"
)

// Config holds the engine geometry.
type Config struct {
	// EstimatedItemHeight is used for rows that have not been measured yet.
	EstimatedItemHeight float64
	// Spacing is the vertical gap between two rows.
	Spacing float64
}

func DefaultConfig() Config {
	return Config{EstimatedItemHeight: 200, Spacing: 2}
}

// Engine is not safe for concurrent use; it is driven from the UI loop.
type Engine struct {
	cfg   Config
	width float64

	// previousItems is the snapshot taken when a batch update starts.
	previousItems []Item
	currentItems  []Item

	appearingItems    map[int]struct{}
	disappearingItems map[int]struct{}
	// animatingAttributes follow self-sizing of rows that are mid-transition
	// so they do not animate from their estimated height.
	animatingAttributes map[int]Attributes

	// preBatchUpdatesCall is set between a data source count change and the
	// matching PrepareForUpdates. Attributes are withheld meanwhile because
	// the rows they would describe are not known yet.
	preBatchUpdatesCall bool

	restoreOffset           *float64
	didPerformInitialLayout bool
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:                 cfg,
		appearingItems:      make(map[int]struct{}),
		disappearingItems:   make(map[int]struct{}),
		animatingAttributes: make(map[int]Attributes),
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Width() float64 {
	return e.width
}

func (e *Engine) SetWidth(width float64) {
	e.width = width
}

// Items returns a copy of the current geometry.
func (e *Engine) Items() []Item {
	return append([]Item(nil), e.currentItems...)
}

// PreviousItems returns a copy of the snapshot of the running batch update.
func (e *Engine) PreviousItems() []Item {
	return append([]Item(nil), e.previousItems...)
}

func (e *Engine) Count() int {
	return len(e.currentItems)
}

// ContentHeight is the bottom edge of the most recent row.
func (e *Engine) ContentHeight() float64 {
	if len(e.currentItems) == 0 {
		return 0
	}
	return e.currentItems[0].MaxY()
}

// Reset drops all geometry so the next Prepare lays the list out again.
func (e *Engine) Reset() {
	e.currentItems = nil
	e.previousItems = nil
	e.clearTransitions()
	e.restoreOffset = nil
	e.preBatchUpdatesCall = false
	e.didPerformInitialLayout = false
}

// Prepare lays out count rows with the estimated height the first time the
// list is shown. It returns the content offset that brings the most recent
// row into view and whether the host should apply it.
func (e *Engine) Prepare(count int, viewport Viewport) (float64, bool) {
	if e.didPerformInitialLayout {
		return 0, false
	}
	e.didPerformInitialLayout = true

	if len(e.currentItems) > 0 {
		return 0, false
	}
	e.width = viewport.Width

	if count <= 0 {
		return 0, false
	}

	est := e.cfg.EstimatedItemHeight
	height := est*float64(count) + e.cfg.Spacing*float64(count-1)
	offset := height
	e.currentItems = make([]Item, 0, count)
	for i := 0; i < count; i++ {
		offset -= est
		e.currentItems = append(e.currentItems, NewItem(offset, est))
		offset -= e.cfg.Spacing
	}

	return e.currentItems[0].MaxY() - viewport.Height + viewport.InsetBottom, true
}

// InvalidateLayout mirrors a host invalidation. A data source count change
// that is not a full reload means a batch update is about to be prepared.
func (e *Engine) InvalidateLayout(dataSourceCountsChanged, everything bool) {
	e.preBatchUpdatesCall = dataSourceCountsChanged && !everything
}

// InvalidateDataSourceCounts is InvalidateLayout(true, false).
func (e *Engine) InvalidateDataSourceCounts() {
	e.InvalidateLayout(true, false)
}

// IsAwaitingUpdates reports whether attributes are being withheld.
func (e *Engine) IsAwaitingUpdates() bool {
	return e.preBatchUpdatesCall
}

// PrepareForUpdates applies a batch. Deletes and move sources are resolved
// against the snapshot by row identity; inserts and move targets are then
// applied in ascending target order, so the result does not depend on the
// order the host lists them in.
func (e *Engine) PrepareForUpdates(updates []Update, viewport Viewport) {
	e.previousItems = append([]Item(nil), e.currentItems...)

	restore := e.ContentHeight() - viewport.ContentOffset
	e.restoreOffset = &restore

	moved := make(map[int]Item)
	var inserts []Update
	for _, u := range updates {
		switch u.Action {
		case ActionDelete:
			e.delete(u.Before, false)
		case ActionMove:
			if item, ok := e.delete(u.Before, true); ok {
				moved[u.Before] = item
			}
			inserts = append(inserts, u)
		case ActionInsert:
			inserts = append(inserts, u)
		case ActionReload, ActionNone:
		}
	}

	sort.SliceStable(inserts, func(i, j int) bool {
		return inserts[i].After < inserts[j].After
	})
	for _, u := range inserts {
		if item, ok := moved[u.Before]; ok && u.Action == ActionMove {
			e.insert(u.After, &item)
			continue
		}
		e.insert(u.After, nil)
	}

	e.preBatchUpdatesCall = false
}

func (e *Engine) delete(oldIndex int, isMove bool) (Item, bool) {
	if oldIndex < 0 || oldIndex >= len(e.previousItems) {
		logger.Debug("listlayout: delete of row %d outside %d rows ignored", oldIndex, len(e.previousItems))
		return Item{}, false
	}

	item := e.previousItems[oldIndex]
	if !isMove {
		e.disappearingItems[oldIndex] = struct{}{}
	}

	delta := item.Height
	if oldIndex > 0 {
		delta += e.cfg.Spacing
	}
	for i := 0; i < oldIndex; i++ {
		if idx, ok := e.IndexForItem(e.previousItems[i].ID); ok {
			e.currentItems[idx].Offset -= delta
		}
	}

	if idx, ok := e.IndexForItem(item.ID); ok {
		e.currentItems = append(e.currentItems[:idx], e.currentItems[idx+1:]...)
	}
	return item, true
}

// insert adds a row at index. A moved row keeps its identity and height.
func (e *Engine) insert(index int, moved *Item) {
	if index < 0 || index > len(e.currentItems) {
		logger.Debug("listlayout: insert at %d outside %d rows ignored", index, len(e.currentItems))
		return
	}
	if moved == nil {
		e.appearingItems[index] = struct{}{}
	}

	var item Item
	if index == len(e.currentItems) {
		item = NewItem(0, e.cfg.EstimatedItemHeight)
	} else {
		neighbour := e.currentItems[index]
		item = NewItem(neighbour.MaxY()+e.cfg.Spacing, neighbour.Height)
	}
	if moved != nil {
		item.ID = moved.ID
		item.Height = moved.Height
	}

	delta := item.Height + e.cfg.Spacing
	for i := 0; i < index; i++ {
		e.currentItems[i].Offset += delta
	}

	e.currentItems = append(e.currentItems, Item{})
	copy(e.currentItems[index+1:], e.currentItems[index:])
	e.currentItems[index] = item
}

// FinalizeUpdates ends the batch update.
func (e *Engine) FinalizeUpdates() {
	e.clearTransitions()
	e.previousItems = nil
	e.restoreOffset = nil
}

func (e *Engine) clearTransitions() {
	clear(e.appearingItems)
	clear(e.disappearingItems)
	clear(e.animatingAttributes)
}

// TargetContentOffset keeps the distance between the viewport and the end of
// the content across a batch update, provided there is enough content to
// scroll. Otherwise the proposed offset stands.
func (e *Engine) TargetContentOffset(proposed float64, viewport Viewport) float64 {
	if e.restoreOffset == nil || e.ContentHeight() <= viewport.Height {
		return proposed
	}
	return e.ContentHeight() - *e.restoreOffset
}

func (e *Engine) attribute(index int, item Item) Attributes {
	return Attributes{
		Index:  index,
		ID:     item.ID,
		Offset: item.Offset,
		Height: item.Height,
		Width:  e.width,
		Alpha:  1,
	}
}

// AttributesForElements returns the rows intersecting [minY, maxY].
func (e *Engine) AttributesForElements(minY, maxY float64) []Attributes {
	if e.preBatchUpdatesCall {
		return nil
	}

	var attrs []Attributes
	for i, item := range e.currentItems {
		isBeforeRect := item.Offset < minY && item.MaxY() < minY
		isAfterRect := minY < item.Offset && maxY < item.Offset
		if isBeforeRect || isAfterRect {
			continue
		}
		attrs = append(attrs, e.attribute(i, item))
	}
	return attrs
}

func (e *Engine) AttributesForItem(index int) (Attributes, bool) {
	if e.preBatchUpdatesCall || index < 0 || index >= len(e.currentItems) {
		return Attributes{}, false
	}
	return e.attribute(index, e.currentItems[index]), true
}
