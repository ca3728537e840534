package listlayout

import "github.com/google/uuid"

// Item is the vertical geometry of one row. Offset is the row's top edge in
// content coordinates; row 0 is the most recent one and sits at the bottom.
type Item struct {
	ID     uuid.UUID
	Offset float64
	Height float64
}

func NewItem(offset, height float64) Item {
	return Item{ID: uuid.New(), Offset: offset, Height: height}
}

func (i Item) MaxY() float64 {
	return i.Offset + i.Height
}

// Attributes is what the hosting view needs to place one row.
type Attributes struct {
	Index  int
	ID     uuid.UUID
	Offset float64
	Height float64
	Width  float64
	Alpha  float64
}

func (a Attributes) MaxY() float64 {
	return a.Offset + a.Height
}

// Size is a viewport size.
type Size struct {
	Width  float64
	Height float64
}

// Viewport is the scroll state of the hosting view.
type Viewport struct {
	Width         float64
	Height        float64
	ContentOffset float64
	InsetTop      float64
	InsetBottom   float64
	Dragging      bool
	Decelerating  bool
}

func (v Viewport) IsScrolling() bool {
	return v.Dragging || v.Decelerating
}

func (v Viewport) Size() Size {
	return Size{Width: v.Width, Height: v.Height}
}

// Invalidation describes the adjustments a layout change asks of the host.
type Invalidation struct {
	Indices                 []int
	ContentSizeAdjustment   float64
	ContentOffsetAdjustment float64
}
