package listlayout_test

import (
	"os"
	"path/filepath"

	"github.com/killallgit/chatlist/pkg/listlayout"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const pagingScript = `
estimated_item_height: 100
spacing: 10
viewport:
  width: 320
  height: 150
initial_count: 3
batches:
  - name: older page
    updates:
      - insert: 3
      - insert: 4
  - name: edit
    updates:
      - reload: 0
    heights:
      0: 60
  - name: keyboard
    resize:
      width: 320
      height: 100
`

var _ = Describe("Script", func() {
	It("should parse every kind of update", func() {
		script, err := listlayout.ParseScript([]byte(`
batches:
  - updates:
      - delete: 1
      - insert: 0
      - reload: 2
      - move: {from: 0, to: 2}
`), listlayout.Config{EstimatedItemHeight: 3, Spacing: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(script.Config).To(Equal(listlayout.Config{EstimatedItemHeight: 3, Spacing: 1}))
		Expect(script.Batches).To(HaveLen(1))
		Expect(script.Batches[0].Name).To(Equal("batch 1"))
		Expect(script.Batches[0].Updates).To(Equal([]listlayout.Update{
			listlayout.DeleteAt(1),
			listlayout.InsertAt(0),
			listlayout.ReloadAt(2),
			listlayout.MoveFrom(0, 2),
		}))
	})

	It("should reject ambiguous updates", func() {
		_, err := listlayout.ParseScript([]byte(`
batches:
  - updates:
      - delete: 1
        insert: 2
`), listlayout.DefaultConfig())
		Expect(err).To(MatchError(listlayout.ErrInvalidUpdate))
	})

	It("should reject malformed YAML", func() {
		_, err := listlayout.ParseScript([]byte("batches: ["), listlayout.DefaultConfig())
		Expect(err).To(HaveOccurred())
	})

	It("should replay batches from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "paging.yaml")
		Expect(os.WriteFile(path, []byte(pagingScript), 0o644)).To(Succeed())

		script, err := listlayout.LoadScript(path, listlayout.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		snapshots := script.Run()
		Expect(snapshots).To(HaveLen(4))

		Expect(snapshots[0].Name).To(Equal("initial"))
		Expect(snapshots[0].ContentHeight).To(Equal(320.0))
		Expect(snapshots[0].Viewport.ContentOffset).To(Equal(170.0))

		Expect(snapshots[1].Items).To(HaveLen(5))
		Expect(snapshots[1].ContentHeight).To(Equal(540.0))
		Expect(snapshots[1].Viewport.ContentOffset).To(Equal(390.0))

		Expect(snapshots[2].Result.Crossfades).To(HaveLen(1))
		Expect(snapshots[2].ContentHeight).To(Equal(500.0))
		Expect(snapshots[2].Viewport.ContentOffset).To(Equal(350.0))

		Expect(snapshots[3].Viewport.Height).To(Equal(100.0))
		Expect(snapshots[3].Viewport.ContentOffset).To(Equal(400.0))
		for _, s := range snapshots {
			expectContiguous(s.Items, 10)
		}
	})

	It("should fail for a missing file", func() {
		_, err := listlayout.LoadScript(filepath.Join(GinkgoT().TempDir(), "missing.yaml"), listlayout.DefaultConfig())
		Expect(err).To(HaveOccurred())
	})
})
