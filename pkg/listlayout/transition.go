package listlayout

import (
	"sort"

	"github.com/google/uuid"
)

// InitialAttributesForAppearingItem returns where the row at index starts
// its appearance. A row inserted by the batch starts at its final geometry.
// A row that existed before starts at its old geometry, faded out, so a
// reload reads as a cross-fade.
func (e *Engine) InitialAttributesForAppearingItem(index int) (Attributes, bool) {
	if _, ok := e.appearingItems[index]; ok {
		if index < 0 || index >= len(e.currentItems) {
			return Attributes{}, false
		}
		attr := e.attribute(index, e.currentItems[index])
		e.animatingAttributes[index] = attr
		return attr, true
	}

	id, ok := e.IDForItem(index)
	if !ok {
		return Attributes{}, false
	}
	oldIndex, ok := e.OldIndexForItem(id)
	if !ok {
		return Attributes{}, false
	}
	attr := e.attribute(oldIndex, e.previousItems[oldIndex])
	attr.Alpha = 0
	return attr, true
}

// FinalAttributesForDisappearingItem returns where the row that was at index
// before the batch ends its disappearance. Removed rows fade out in place;
// rows that survive fade out at their new geometry.
func (e *Engine) FinalAttributesForDisappearingItem(index int) (Attributes, bool) {
	id, ok := e.OldIDForItem(index)
	if !ok {
		return Attributes{}, false
	}

	if _, ok := e.disappearingItems[index]; ok {
		attr := e.attribute(index, e.previousItems[index])
		attr.Alpha = 0
		return attr, true
	}

	if newIndex, ok := e.IndexForItem(id); ok {
		attr := e.attribute(newIndex, e.currentItems[newIndex])
		attr.Alpha = 0
		e.animatingAttributes[newIndex] = attr
		return attr, true
	}

	return Attributes{}, false
}

// AnimatingAttributes returns the transition attributes handed out for the
// row at index during the running batch, with any self-sizing applied.
func (e *Engine) AnimatingAttributes(index int) (Attributes, bool) {
	attr, ok := e.animatingAttributes[index]
	return attr, ok
}

// AppearingItems lists the rows inserted by the running batch.
func (e *Engine) AppearingItems() []int {
	return sortedIndices(e.appearingItems)
}

// DisappearingItems lists the pre-batch rows removed by the running batch.
func (e *Engine) DisappearingItems() []int {
	return sortedIndices(e.disappearingItems)
}

func sortedIndices(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (e *Engine) IDForItem(index int) (uuid.UUID, bool) {
	if index < 0 || index >= len(e.currentItems) {
		return uuid.Nil, false
	}
	return e.currentItems[index].ID, true
}

func (e *Engine) IndexForItem(id uuid.UUID) (int, bool) {
	for i, item := range e.currentItems {
		if item.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (e *Engine) OldIDForItem(index int) (uuid.UUID, bool) {
	if index < 0 || index >= len(e.previousItems) {
		return uuid.Nil, false
	}
	return e.previousItems[index].ID, true
}

func (e *Engine) OldIndexForItem(id uuid.UUID) (int, bool) {
	for i, item := range e.previousItems {
		if item.ID == id {
			return i, true
		}
	}
	return -1, false
}
