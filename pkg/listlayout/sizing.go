package listlayout

// ShouldInvalidateForPreferredHeight reports whether a measured height
// differs from the row's current height.
func (e *Engine) ShouldInvalidateForPreferredHeight(index int, height float64) bool {
	if index < 0 || index >= len(e.currentItems) {
		return false
	}
	return e.currentItems[index].Height != height
}

// InvalidationForPreferredHeight records the measured height of a row. Every
// row below it (indices 0..index-1) moves by the difference. The content
// offset follows when the row starts above the viewport, or when the list is
// idle, so the visible rows do not jump.
func (e *Engine) InvalidationForPreferredHeight(index int, height float64, viewport Viewport) Invalidation {
	if index < 0 || index >= len(e.currentItems) {
		return Invalidation{}
	}

	original := e.currentItems[index]
	delta := height - original.Height
	e.currentItems[index].Height = height
	if attr, ok := e.animatingAttributes[index]; ok {
		attr.Height = height
		e.animatingAttributes[index] = attr
	}

	inv := Invalidation{
		Indices:               make([]int, 0, index+1),
		ContentSizeAdjustment: delta,
	}
	for i := 0; i <= index; i++ {
		inv.Indices = append(inv.Indices, i)
	}
	for i := 0; i < index; i++ {
		e.currentItems[i].Offset += delta
	}

	isSizingElementAboveTopEdge := original.Offset < viewport.ContentOffset
	if isSizingElementAboveTopEdge || !viewport.IsScrolling() {
		inv.ContentOffsetAdjustment = delta
	}
	return inv
}

func (e *Engine) ShouldInvalidateForBoundsChange(old, updated Size) bool {
	return old != updated
}

// InvalidationForBoundsChange keeps the most recent row fully visible when
// the viewport shrinks, as long as the content is taller than the viewport
// and scrolled away from the top.
func (e *Engine) InvalidationForBoundsChange(viewport Viewport, updated Size) Invalidation {
	e.width = updated.Width

	var inv Invalidation
	delta := updated.Height - viewport.Height
	if delta >= 0 || len(e.currentItems) == 0 {
		return inv
	}
	if e.ContentHeight() <= viewport.Height {
		return inv
	}
	if !e.isItemVisible(0, viewport) || viewport.ContentOffset <= -viewport.InsetTop {
		return inv
	}
	inv.ContentOffsetAdjustment = -delta
	return inv
}

func (e *Engine) isItemVisible(index int, viewport Viewport) bool {
	if index < 0 || index >= len(e.currentItems) {
		return false
	}
	item := e.currentItems[index]
	top := viewport.ContentOffset
	bottom := viewport.ContentOffset + viewport.Height
	return item.MaxY() > top && item.Offset < bottom
}
