package testutil

import (
	"fmt"
	"time"

	"github.com/killallgit/chatlist/pkg/chat"
)

// Conversation builds a message list in the order messages are sent.
type Conversation struct {
	clock       time.Time
	currentUser string
	messages    []chat.Message
}

// NewConversation starts a conversation at start. Messages sent by
// currentUser are flagged as the current user's.
func NewConversation(start time.Time, currentUser string) *Conversation {
	return &Conversation{clock: start, currentUser: currentUser}
}

// Say appends a regular message sent after the previous one.
func (c *Conversation) Say(author string, after time.Duration, text string) *Conversation {
	return c.Send(author, after, chat.MessageTypeRegular, text)
}

// Send appends a message of the given type.
func (c *Conversation) Send(author string, after time.Duration, t chat.MessageType, text string) *Conversation {
	c.clock = c.clock.Add(after)
	c.messages = append(c.messages, chat.Message{
		ID:                  fmt.Sprintf("m%d", len(c.messages)+1),
		AuthorID:            author,
		AuthorName:          author,
		CreatedAt:           c.clock,
		Type:                t,
		Text:                text,
		IsSentByCurrentUser: author != "" && author == c.currentUser,
	})
	return c
}

// Edit changes the most recently sent message.
func (c *Conversation) Edit(edit func(*chat.Message)) *Conversation {
	if len(c.messages) > 0 {
		edit(&c.messages[len(c.messages)-1])
	}
	return c
}

// Now is the send time of the most recent message.
func (c *Conversation) Now() time.Time {
	return c.clock
}

// List returns the messages newest first.
func (c *Conversation) List() chat.List {
	list := make(chat.List, len(c.messages))
	for i, m := range c.messages {
		list[len(list)-1-i] = m
	}
	return list
}
