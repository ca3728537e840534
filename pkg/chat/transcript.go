package chat

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrDuplicateMessageID = errors.New("duplicate message id")

// Transcript is a channel plus its messages, newest first.
type Transcript struct {
	Channel     Channel
	CurrentUser string
	Messages    List
}

type transcriptFile struct {
	Channel struct {
		ID                string `yaml:"id"`
		MemberCount       int    `yaml:"member_count"`
		RepliesEnabled    *bool  `yaml:"replies_enabled"`
		ReactionsEnabled  *bool  `yaml:"reactions_enabled"`
		ReadEventsEnabled *bool  `yaml:"read_events_enabled"`
		DeletedVisibility string `yaml:"deleted_messages_visibility"`
	} `yaml:"channel"`
	CurrentUser string              `yaml:"current_user"`
	Messages    []transcriptMessage `yaml:"messages"`
}

type transcriptMessage struct {
	ID         string         `yaml:"id"`
	Author     string         `yaml:"author"`
	AuthorName string         `yaml:"author_name"`
	CreatedAt  time.Time      `yaml:"created_at"`
	Type       string         `yaml:"type"`
	Text       string         `yaml:"text"`
	Quoted     string         `yaml:"quoted_message_id"`
	Parent     string         `yaml:"parent_id"`
	ReplyCount int            `yaml:"reply_count"`
	Reactions  map[string]int `yaml:"reactions"`
	Failed     bool           `yaml:"failed"`
	Status     string         `yaml:"status"`
	DeletedAt  *time.Time     `yaml:"deleted_at"`
}

// LoadTranscript reads a YAML transcript from disk.
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return ParseTranscript(data)
}

// ParseTranscript decodes a YAML transcript. Messages in the file are listed
// oldest first, the way they are read; the returned list is newest first.
func ParseTranscript(data []byte) (*Transcript, error) {
	var file transcriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}

	visibility, err := ParseDeletedMessageVisibility(file.Channel.DeletedVisibility)
	if err != nil {
		return nil, err
	}

	channel := NewChannel(file.Channel.ID, file.Channel.MemberCount)
	channel.DeletedMessagesVisibility = visibility
	if file.Channel.RepliesEnabled != nil {
		channel.RepliesEnabled = *file.Channel.RepliesEnabled
	}
	if file.Channel.ReactionsEnabled != nil {
		channel.ReactionsEnabled = *file.Channel.ReactionsEnabled
	}
	if file.Channel.ReadEventsEnabled != nil {
		channel.ReadEventsEnabled = *file.Channel.ReadEventsEnabled
	}

	seen := make(map[string]struct{}, len(file.Messages))
	list := make(List, len(file.Messages))
	for i, raw := range file.Messages {
		if _, ok := seen[raw.ID]; ok {
			return nil, fmt.Errorf("message %q: %w", raw.ID, ErrDuplicateMessageID)
		}
		seen[raw.ID] = struct{}{}

		msgType, err := ParseMessageType(raw.Type)
		if err != nil {
			return nil, fmt.Errorf("message %q: %w", raw.ID, err)
		}
		status, err := ParseDeliveryStatus(raw.Status)
		if err != nil {
			return nil, fmt.Errorf("message %q: %w", raw.ID, err)
		}

		name := raw.AuthorName
		if name == "" {
			name = raw.Author
		}

		list[len(list)-1-i] = Message{
			ID:                  raw.ID,
			AuthorID:            raw.Author,
			AuthorName:          name,
			CreatedAt:           raw.CreatedAt,
			Type:                msgType,
			Text:                raw.Text,
			QuotedMessageID:     raw.Quoted,
			ParentMessageID:     raw.Parent,
			ReplyCount:          raw.ReplyCount,
			ReactionScores:      raw.Reactions,
			LastActionFailed:    raw.Failed,
			DeliveryStatus:      status,
			IsSentByCurrentUser: file.CurrentUser != "" && raw.Author == file.CurrentUser,
			DeletedAt:           raw.DeletedAt,
		}
	}

	return &Transcript{
		Channel:     channel,
		CurrentUser: file.CurrentUser,
		Messages:    list,
	}, nil
}
