package preview_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/chatlist/pkg/chat"
	"github.com/killallgit/chatlist/pkg/layoutopts"
	"github.com/killallgit/chatlist/pkg/preview"
	"github.com/killallgit/chatlist/pkg/templates"
	"github.com/killallgit/chatlist/pkg/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func message(id, author string, ago time.Duration, text string) chat.Message {
	return chat.Message{
		ID:         id,
		AuthorID:   author,
		AuthorName: author,
		CreatedAt:  now.Add(-ago),
		Type:       chat.MessageTypeRegular,
		Text:       text,
	}
}

// conversation returns n messages five minutes apart, newest first, the
// newest sent at now with text "message number 0".
func conversation(n int) chat.List {
	conv := testutil.NewConversation(now.Add(-time.Duration(n)*5*time.Minute), "")
	for i := n - 1; i >= 0; i-- {
		author := "Ann Lee"
		if i%3 == 0 {
			author = "Bob"
		}
		conv.Say(author, 5*time.Minute, fmt.Sprintf("message number %d", i))
	}
	return conv.List()
}

var _ = Describe("Renderer", func() {
	var (
		renderer *preview.Renderer
		cache    *templates.Cache[*preview.Template]
		channel  chat.Channel
	)

	BeforeEach(func() {
		var err error
		cache, err = templates.New[*preview.Template](8)
		Expect(err).NotTo(HaveOccurred())
		renderer = preview.NewRenderer(layoutopts.NewResolver(layoutopts.DefaultConfig()), cache, 60)
		renderer.SetNow(now)
		channel = chat.NewChannel("general", 5)
	})

	It("should draw the last message of a run with avatar, author and timestamp", func() {
		list := chat.List{message("a", "Ann Lee", time.Minute, "hello there")}
		row := renderer.Render(0, channel, list)

		Expect(row).To(ContainSubstring("Ann Lee"))
		Expect(row).To(ContainSubstring("(AL)"))
		Expect(row).To(ContainSubstring("hello there"))
		Expect(row).To(ContainSubstring("1 minute ago"))
		Expect(row).To(ContainSubstring("╰"))
		Expect(renderer.Height(0, channel, list)).To(Equal(lipgloss.Height(row)))
	})

	It("should leave the bubble open inside a run", func() {
		list := chat.List{
			message("b", "Ann Lee", 0, "second"),
			message("a", "Ann Lee", 10*time.Second, "first"),
		}
		row := renderer.Render(1, channel, list)

		Expect(row).To(ContainSubstring("first"))
		Expect(row).To(ContainSubstring("╭"))
		Expect(row).NotTo(ContainSubstring("╰"))
		Expect(row).NotTo(ContainSubstring("Ann Lee"))
		Expect(row).NotTo(ContainSubstring("ago"))
	})

	It("should align the current user's messages to the right", func() {
		own := message("a", "me", time.Minute, "mine")
		own.IsSentByCurrentUser = true
		row := renderer.Render(0, channel, chat.List{own})

		for _, line := range strings.Split(row, "\n") {
			Expect(line).To(HavePrefix("    "))
			Expect(lipgloss.Width(line)).To(Equal(60))
		}
		Expect(row).NotTo(ContainSubstring("(ME)"))
	})

	It("should center system messages without a bubble", func() {
		system := message("s", "bot", 0, "Bob joined")
		system.Type = chat.MessageTypeSystem
		row := renderer.Render(0, channel, chat.List{system})

		Expect(row).To(ContainSubstring("Bob joined"))
		Expect(row).NotTo(ContainSubstring("╭"))
		Expect(row).To(HavePrefix("      "))
	})

	It("should draw reactions, thread info and failures", func() {
		m := message("a", "Bob", 0, "look")
		m.ReactionScores = map[string]int{"like": 2, "love": 1}
		m.ReplyCount = 1200
		m.LastActionFailed = true
		row := renderer.Render(0, channel, chat.List{m})

		Expect(row).To(ContainSubstring("like 2 · love 1 · 1,200 replies"))
		Expect(row).To(ContainSubstring("! failed"))
	})

	It("should draw a deleted message as a placeholder", func() {
		m := message("a", "me", 0, "secret")
		m.IsSentByCurrentUser = true
		m.Type = chat.MessageTypeDeleted
		row := renderer.Render(0, channel, chat.List{m})

		Expect(row).To(ContainSubstring("message deleted"))
		Expect(row).To(ContainSubstring("only visible to you"))
		Expect(row).NotTo(ContainSubstring("secret"))
	})

	It("should wrap long text inside the bubble", func() {
		m := message("a", "Bob", 0, strings.Repeat("word ", 40))
		row := renderer.Render(0, channel, chat.List{m})
		for _, line := range strings.Split(row, "\n") {
			Expect(lipgloss.Width(line)).To(BeNumerically("<=", 60))
		}
		Expect(lipgloss.Height(row)).To(BeNumerically(">", 5))
	})

	It("should render nothing for a stale index", func() {
		Expect(renderer.Render(3, channel, chat.List{})).To(BeEmpty())
	})

	It("should share templates between rows with equal options", func() {
		list := chat.List{
			message("c", "Bob", 0, "three"),
			message("b", "Ann Lee", 5*time.Minute, "two"),
			message("a", "Bob", 10*time.Minute, "one"),
		}
		renderer.Render(0, channel, list)
		renderer.Render(1, channel, list)
		renderer.Render(2, channel, list)
		Expect(cache.Len()).To(Equal(1))

		own := message("d", "me", 0, "mine")
		own.IsSentByCurrentUser = true
		renderer.Render(0, channel, chat.List{own})
		Expect(cache.Len()).To(Equal(2))
	})
})
