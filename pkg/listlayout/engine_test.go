package listlayout_test

import (
	"github.com/killallgit/chatlist/pkg/listlayout"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type geometry struct {
	Offset float64
	Height float64
}

func geometryOf(items []listlayout.Item) []geometry {
	out := make([]geometry, 0, len(items))
	for _, item := range items {
		out = append(out, geometry{Offset: item.Offset, Height: item.Height})
	}
	return out
}

func expectContiguous(items []listlayout.Item, spacing float64) {
	GinkgoHelper()
	for i := 0; i+1 < len(items); i++ {
		Expect(items[i].Offset).To(Equal(items[i+1].MaxY()+spacing), "rows %d and %d", i, i+1)
	}
	if len(items) > 0 {
		Expect(items[len(items)-1].Offset).To(BeZero())
	}
}

var _ = Describe("Engine", func() {
	var (
		engine   *listlayout.Engine
		viewport listlayout.Viewport
	)

	BeforeEach(func() {
		engine = listlayout.NewEngine(listlayout.Config{EstimatedItemHeight: 100, Spacing: 10})
		viewport = listlayout.Viewport{Width: 320, Height: 150}
	})

	Describe("Prepare", func() {
		It("should lay out every row with the estimated height from the bottom", func() {
			offset, ok := engine.Prepare(3, viewport)
			Expect(ok).To(BeTrue())
			Expect(offset).To(Equal(170.0))
			Expect(geometryOf(engine.Items())).To(Equal([]geometry{
				{220, 100}, {110, 100}, {0, 100},
			}))
			Expect(engine.ContentHeight()).To(Equal(320.0))
			Expect(engine.Width()).To(Equal(320.0))
		})

		It("should only run once", func() {
			engine.Prepare(3, viewport)
			_, ok := engine.Prepare(5, viewport)
			Expect(ok).To(BeFalse())
			Expect(engine.Count()).To(Equal(3))
		})

		It("should leave an empty list empty", func() {
			_, ok := engine.Prepare(0, viewport)
			Expect(ok).To(BeFalse())
			Expect(engine.Count()).To(BeZero())
			Expect(engine.ContentHeight()).To(BeZero())
		})

		It("should lay out again after Reset", func() {
			engine.Prepare(3, viewport)
			engine.Reset()
			_, ok := engine.Prepare(1, viewport)
			Expect(ok).To(BeTrue())
			Expect(geometryOf(engine.Items())).To(Equal([]geometry{{0, 100}}))
		})
	})

	Describe("PrepareForUpdates", func() {
		BeforeEach(func() {
			engine.Prepare(3, viewport)
		})

		It("should shift newer rows down by height and spacing on delete", func() {
			engine.PrepareForUpdates([]listlayout.Update{listlayout.DeleteAt(1)}, viewport)
			Expect(geometryOf(engine.Items())).To(Equal([]geometry{{110, 100}, {0, 100}}))
		})

		It("should delete the most recent row without moving the others", func() {
			engine.PrepareForUpdates([]listlayout.Update{listlayout.DeleteAt(0)}, viewport)
			Expect(geometryOf(engine.Items())).To(Equal([]geometry{{110, 100}, {0, 100}}))
		})

		It("should place a new most recent row below the previous one", func() {
			engine.PrepareForUpdates([]listlayout.Update{listlayout.InsertAt(0)}, viewport)
			items := engine.Items()
			Expect(geometryOf(items)).To(Equal([]geometry{
				{330, 100}, {220, 100}, {110, 100}, {0, 100},
			}))
			Expect(engine.ContentHeight()).To(Equal(430.0))
		})

		It("should push every row down when an older row is inserted at the top", func() {
			engine.PrepareForUpdates([]listlayout.Update{listlayout.InsertAt(3)}, viewport)
			Expect(geometryOf(engine.Items())).To(Equal([]geometry{
				{330, 100}, {220, 100}, {110, 100}, {0, 100},
			}))
		})

		It("should resolve deletes by identity when several are batched", func() {
			before := engine.Items()
			engine.PrepareForUpdates([]listlayout.Update{
				listlayout.DeleteAt(0),
				listlayout.DeleteAt(2),
			}, viewport)
			items := engine.Items()
			Expect(items).To(HaveLen(1))
			Expect(items[0].ID).To(Equal(before[1].ID))
			expectContiguous(items, 10)
		})

		It("should apply inserts in target order regardless of listing order", func() {
			engine.PrepareForUpdates([]listlayout.Update{
				listlayout.InsertAt(4),
				listlayout.InsertAt(0),
			}, viewport)
			Expect(engine.Count()).To(Equal(5))
			expectContiguous(engine.Items(), 10)
		})

		It("should keep the identity and height of a moved row", func() {
			engine.InvalidationForPreferredHeight(2, 50, viewport)
			before := engine.Items()

			engine.PrepareForUpdates([]listlayout.Update{listlayout.MoveFrom(2, 0)}, viewport)

			items := engine.Items()
			Expect(items[0].ID).To(Equal(before[2].ID))
			Expect(items[1].ID).To(Equal(before[0].ID))
			Expect(items[2].ID).To(Equal(before[1].ID))
			Expect(geometryOf(items)).To(Equal([]geometry{
				{220, 50}, {110, 100}, {0, 100},
			}))
			Expect(engine.AppearingItems()).To(BeEmpty())
			Expect(engine.DisappearingItems()).To(BeEmpty())
		})

		It("should ignore updates outside the list", func() {
			engine.PrepareForUpdates([]listlayout.Update{
				listlayout.DeleteAt(7),
				listlayout.InsertAt(9),
			}, viewport)
			Expect(engine.Count()).To(Equal(3))
			expectContiguous(engine.Items(), 10)
		})

		It("should leave geometry untouched on reload", func() {
			before := engine.Items()
			engine.PrepareForUpdates([]listlayout.Update{listlayout.ReloadAt(1)}, viewport)
			Expect(engine.Items()).To(Equal(before))
		})

		It("should keep rows contiguous across mixed batches", func() {
			batches := [][]listlayout.Update{
				{listlayout.InsertAt(0), listlayout.InsertAt(1)},
				{listlayout.DeleteAt(3), listlayout.MoveFrom(0, 2)},
				{listlayout.InsertAt(2), listlayout.DeleteAt(1), listlayout.DeleteAt(0)},
				{listlayout.MoveFrom(2, 0), listlayout.InsertAt(3)},
			}
			for _, batch := range batches {
				engine.InvalidateDataSourceCounts()
				engine.PrepareForUpdates(batch, viewport)
				expectContiguous(engine.Items(), 10)
				engine.FinalizeUpdates()
			}
		})
	})

	Describe("inserting into an empty list", func() {
		It("should use the estimated height at offset zero", func() {
			engine = listlayout.NewEngine(listlayout.DefaultConfig())
			engine.Prepare(0, viewport)
			engine.PrepareForUpdates([]listlayout.Update{listlayout.InsertAt(0)}, viewport)
			Expect(geometryOf(engine.Items())).To(Equal([]geometry{{0, 200}}))
		})
	})

	Describe("pre-batch guard", func() {
		BeforeEach(func() {
			engine.Prepare(3, viewport)
		})

		It("should withhold attributes until the batch is known", func() {
			engine.InvalidateDataSourceCounts()
			Expect(engine.IsAwaitingUpdates()).To(BeTrue())
			Expect(engine.AttributesForElements(0, 1000)).To(BeEmpty())
			_, ok := engine.AttributesForItem(0)
			Expect(ok).To(BeFalse())

			engine.PrepareForUpdates(nil, viewport)
			Expect(engine.IsAwaitingUpdates()).To(BeFalse())
			Expect(engine.AttributesForElements(0, 1000)).To(HaveLen(3))
		})

		It("should not guard a full reload", func() {
			engine.InvalidateLayout(true, true)
			Expect(engine.IsAwaitingUpdates()).To(BeFalse())
			_, ok := engine.AttributesForItem(0)
			Expect(ok).To(BeTrue())
		})
	})

	Describe("AttributesForElements", func() {
		It("should return the rows intersecting the rect", func() {
			engine.Prepare(3, viewport)
			attrs := engine.AttributesForElements(215, 320)
			Expect(attrs).To(HaveLen(1))
			Expect(attrs[0].Index).To(Equal(0))
			Expect(attrs[0].Width).To(Equal(320.0))
			Expect(attrs[0].Alpha).To(Equal(1.0))

			Expect(engine.AttributesForElements(100, 215)).To(HaveLen(2))
		})
	})

	Describe("TargetContentOffset", func() {
		BeforeEach(func() {
			engine.Prepare(3, viewport)
			viewport.ContentOffset = 100
		})

		It("should keep the distance to the end of the content", func() {
			engine.PrepareForUpdates([]listlayout.Update{listlayout.InsertAt(3)}, viewport)
			target := engine.TargetContentOffset(100, viewport)
			Expect(engine.ContentHeight() - target).To(Equal(320.0 - 100))
		})

		It("should keep the proposed offset when the content fits the viewport", func() {
			viewport.Height = 1000
			engine.PrepareForUpdates([]listlayout.Update{listlayout.DeleteAt(0)}, viewport)
			Expect(engine.TargetContentOffset(42, viewport)).To(Equal(42.0))
		})

		It("should keep the proposed offset outside a batch", func() {
			engine.PrepareForUpdates([]listlayout.Update{listlayout.InsertAt(3)}, viewport)
			engine.FinalizeUpdates()
			Expect(engine.TargetContentOffset(42, viewport)).To(Equal(42.0))
		})
	})
})
