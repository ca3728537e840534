package listlayout

// Sizer reports the measured height of the row at index, if it is known.
type Sizer func(index int) (float64, bool)

// BatchResult is what a host animates after a batch update.
type BatchResult struct {
	// Appearing holds the initial attributes of rows that appear.
	Appearing []Attributes
	// Disappearing holds the final attributes of rows that go away,
	// indexed by their position before the batch.
	Disappearing []Attributes
	// Crossfades pair the faded geometry of a reloaded row before and after
	// the batch.
	Crossfades    []Crossfade
	Invalidations []Invalidation
}

// Crossfade is the transition of a row reloaded in place.
type Crossfade struct {
	From Attributes
	To   Attributes
}

// Host drives an Engine the way a scrolling list view does: it owns the
// viewport, runs the update cycle in order and applies the scroll
// adjustments the engine asks for.
type Host struct {
	Engine   *Engine
	Viewport Viewport
}

func NewHost(engine *Engine, viewport Viewport) *Host {
	return &Host{Engine: engine, Viewport: viewport}
}

// Load performs the cold start layout of count rows and self-sizes every row
// the sizer can measure.
func (h *Host) Load(count int, sizer Sizer) []Invalidation {
	if offset, ok := h.Engine.Prepare(count, h.Viewport); ok {
		h.Viewport.ContentOffset = offset
	}
	invalidations := h.selfSize(h.Engine.Count(), sizer)
	h.clamp()
	return invalidations
}

// PerformBatchUpdates runs one update cycle: the data source count change,
// the batch itself, self-sizing, scroll anchor restoration and finalizing.
func (h *Host) PerformBatchUpdates(updates []Update, sizer Sizer) BatchResult {
	var result BatchResult
	oldCount := h.Engine.Count()

	h.Engine.InvalidateDataSourceCounts()
	h.Engine.PrepareForUpdates(updates, h.Viewport)

	for _, i := range h.Engine.AppearingItems() {
		if attr, ok := h.Engine.InitialAttributesForAppearingItem(i); ok {
			result.Appearing = append(result.Appearing, attr)
		}
	}
	for _, i := range h.Engine.DisappearingItems() {
		if attr, ok := h.Engine.FinalAttributesForDisappearingItem(i); ok {
			result.Disappearing = append(result.Disappearing, attr)
		}
	}
	for _, u := range updates {
		if u.Action != ActionReload || u.Before >= oldCount {
			continue
		}
		from, okFrom := h.Engine.InitialAttributesForAppearingItem(u.After)
		to, okTo := h.Engine.FinalAttributesForDisappearingItem(u.Before)
		if okFrom && okTo {
			result.Crossfades = append(result.Crossfades, Crossfade{From: from, To: to})
		}
	}

	result.Invalidations = h.selfSize(h.Engine.Count(), sizer)
	h.Viewport.ContentOffset = h.Engine.TargetContentOffset(h.Viewport.ContentOffset, h.Viewport)
	h.Engine.FinalizeUpdates()
	h.clamp()
	return result
}

func (h *Host) selfSize(count int, sizer Sizer) []Invalidation {
	if sizer == nil {
		return nil
	}
	var invalidations []Invalidation
	for i := 0; i < count; i++ {
		height, ok := sizer(i)
		if !ok {
			continue
		}
		if inv, ok := h.SetPreferredHeight(i, height); ok {
			invalidations = append(invalidations, inv)
		}
	}
	return invalidations
}

// SetPreferredHeight reports a measured height for the row at index.
func (h *Host) SetPreferredHeight(index int, height float64) (Invalidation, bool) {
	if !h.Engine.ShouldInvalidateForPreferredHeight(index, height) {
		return Invalidation{}, false
	}
	inv := h.Engine.InvalidationForPreferredHeight(index, height, h.Viewport)
	h.Viewport.ContentOffset += inv.ContentOffsetAdjustment
	return inv, true
}

// Resize changes the viewport size.
func (h *Host) Resize(size Size) Invalidation {
	if !h.Engine.ShouldInvalidateForBoundsChange(h.Viewport.Size(), size) {
		return Invalidation{}
	}
	inv := h.Engine.InvalidationForBoundsChange(h.Viewport, size)
	h.Viewport.Width = size.Width
	h.Viewport.Height = size.Height
	h.Viewport.ContentOffset += inv.ContentOffsetAdjustment
	h.clamp()
	return inv
}

func (h *Host) ScrollBy(delta float64) {
	h.Viewport.ContentOffset += delta
	h.clamp()
}

// ScrollToBottom shows the most recent row.
func (h *Host) ScrollToBottom() {
	h.Viewport.ContentOffset = h.maxOffset()
	h.clamp()
}

// VisibleAttributes returns the rows inside the viewport.
func (h *Host) VisibleAttributes() []Attributes {
	return h.Engine.AttributesForElements(h.Viewport.ContentOffset, h.Viewport.ContentOffset+h.Viewport.Height)
}

func (h *Host) minOffset() float64 {
	return -h.Viewport.InsetTop
}

func (h *Host) maxOffset() float64 {
	return h.Engine.ContentHeight() + h.Viewport.InsetBottom - h.Viewport.Height
}

func (h *Host) clamp() {
	lo, hi := h.minOffset(), h.maxOffset()
	if hi < lo {
		hi = lo
	}
	if h.Viewport.ContentOffset > hi {
		h.Viewport.ContentOffset = hi
	}
	if h.Viewport.ContentOffset < lo {
		h.Viewport.ContentOffset = lo
	}
}
