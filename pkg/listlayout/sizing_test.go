package listlayout_test

import (
	"github.com/killallgit/chatlist/pkg/listlayout"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sizing", func() {
	var (
		engine   *listlayout.Engine
		viewport listlayout.Viewport
	)

	BeforeEach(func() {
		engine = listlayout.NewEngine(listlayout.Config{EstimatedItemHeight: 100, Spacing: 10})
		viewport = listlayout.Viewport{Width: 320, Height: 150, ContentOffset: 170}
		engine.Prepare(3, viewport)
	})

	Describe("preferred height", func() {
		It("should only invalidate for a different height", func() {
			Expect(engine.ShouldInvalidateForPreferredHeight(0, 100)).To(BeFalse())
			Expect(engine.ShouldInvalidateForPreferredHeight(0, 101)).To(BeTrue())
			Expect(engine.ShouldInvalidateForPreferredHeight(5, 1)).To(BeFalse())
		})

		It("should shift newer rows and follow with the offset while idle", func() {
			inv := engine.InvalidationForPreferredHeight(1, 150, viewport)

			Expect(inv.Indices).To(Equal([]int{0, 1}))
			Expect(inv.ContentSizeAdjustment).To(Equal(50.0))
			Expect(inv.ContentOffsetAdjustment).To(Equal(50.0))
			Expect(geometryOf(engine.Items())).To(Equal([]geometry{
				{270, 100}, {110, 150}, {0, 100},
			}))
			expectContiguous(engine.Items(), 10)
		})

		It("should follow with the offset for a row above the viewport while scrolling", func() {
			viewport.Dragging = true
			inv := engine.InvalidationForPreferredHeight(1, 150, viewport)
			Expect(inv.ContentOffsetAdjustment).To(Equal(50.0))
		})

		It("should not move the offset for a visible row while scrolling", func() {
			viewport.Decelerating = true
			inv := engine.InvalidationForPreferredHeight(0, 120, viewport)
			Expect(inv.Indices).To(Equal([]int{0}))
			Expect(inv.ContentSizeAdjustment).To(Equal(20.0))
			Expect(inv.ContentOffsetAdjustment).To(BeZero())
		})

		It("should ignore rows outside the list", func() {
			Expect(engine.InvalidationForPreferredHeight(3, 10, viewport)).To(Equal(listlayout.Invalidation{}))
		})
	})

	Describe("bounds change", func() {
		It("should only invalidate for a different size", func() {
			Expect(engine.ShouldInvalidateForBoundsChange(viewport.Size(), viewport.Size())).To(BeFalse())
			Expect(engine.ShouldInvalidateForBoundsChange(viewport.Size(), listlayout.Size{Width: 320, Height: 100})).To(BeTrue())
		})

		It("should keep the most recent row visible when the viewport shrinks", func() {
			inv := engine.InvalidationForBoundsChange(viewport, listlayout.Size{Width: 300, Height: 100})
			Expect(inv.ContentOffsetAdjustment).To(Equal(50.0))
			Expect(engine.Width()).To(Equal(300.0))
		})

		It("should not adjust when the viewport grows", func() {
			inv := engine.InvalidationForBoundsChange(viewport, listlayout.Size{Width: 320, Height: 200})
			Expect(inv.ContentOffsetAdjustment).To(BeZero())
		})

		It("should not adjust when the content fits the viewport", func() {
			viewport.Height = 400
			viewport.ContentOffset = 0
			inv := engine.InvalidationForBoundsChange(viewport, listlayout.Size{Width: 320, Height: 350})
			Expect(inv.ContentOffsetAdjustment).To(BeZero())
		})

		It("should not adjust when the most recent row is scrolled out of view", func() {
			viewport.ContentOffset = 0
			viewport.Height = 100
			inv := engine.InvalidationForBoundsChange(viewport, listlayout.Size{Width: 320, Height: 80})
			Expect(inv.ContentOffsetAdjustment).To(BeZero())
		})
	})
})
