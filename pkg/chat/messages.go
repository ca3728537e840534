package chat

import (
	"errors"
	"strings"
	"time"
)

type MessageType string

const (
	MessageTypeRegular   MessageType = "regular"
	MessageTypeSystem    MessageType = "system"
	MessageTypeError     MessageType = "error"
	MessageTypeEphemeral MessageType = "ephemeral"
	MessageTypeDeleted   MessageType = "deleted"
	MessageTypeReply     MessageType = "reply"
)

var ErrUnknownMessageType = errors.New("unknown message type")

// ParseMessageType maps a transcript value to a MessageType. An empty value
// is a regular message.
func ParseMessageType(s string) (MessageType, error) {
	switch t := MessageType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return MessageTypeRegular, nil
	case MessageTypeRegular, MessageTypeSystem, MessageTypeError,
		MessageTypeEphemeral, MessageTypeDeleted, MessageTypeReply:
		return t, nil
	default:
		return "", ErrUnknownMessageType
	}
}

// IsOneOf reports whether t equals any of the given types.
func (t MessageType) IsOneOf(types ...MessageType) bool {
	for _, other := range types {
		if t == other {
			return true
		}
	}
	return false
}

type DeliveryStatus string

const (
	DeliveryStatusPending DeliveryStatus = "pending"
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusRead    DeliveryStatus = "read"
	DeliveryStatusFailed  DeliveryStatus = "failed"
)

var ErrUnknownDeliveryStatus = errors.New("unknown delivery status")

// ParseDeliveryStatus returns nil for an empty value.
func ParseDeliveryStatus(s string) (*DeliveryStatus, error) {
	switch st := DeliveryStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return nil, nil
	case DeliveryStatusPending, DeliveryStatusSent, DeliveryStatusRead, DeliveryStatusFailed:
		return &st, nil
	default:
		return nil, ErrUnknownDeliveryStatus
	}
}

// Message is a read-only view of a chat message as the list sees it.
type Message struct {
	ID                  string
	AuthorID            string
	AuthorName          string
	CreatedAt           time.Time
	Type                MessageType
	Text                string
	QuotedMessageID     string
	ParentMessageID     string
	ReplyCount          int
	ReactionScores      map[string]int
	LastActionFailed    bool
	DeliveryStatus      *DeliveryStatus
	IsSentByCurrentUser bool
	DeletedAt           *time.Time
}

func (m Message) IsDeleted() bool {
	return m.Type == MessageTypeDeleted || m.DeletedAt != nil
}

func (m Message) IsRootOfThread() bool {
	return m.ReplyCount > 0
}

func (m Message) IsPartOfThread() bool {
	return m.ParentMessageID != ""
}

func (m Message) HasText() bool {
	return strings.TrimSpace(m.Text) != ""
}

func (m Message) HasQuotedMessage() bool {
	return m.QuotedMessageID != ""
}

// Messages is a random-access, read-only message sequence ordered newest
// first: the message at i+1 was sent before the message at i.
type Messages interface {
	Len() int
	At(i int) Message
}

// List is the slice-backed Messages implementation.
type List []Message

func (l List) Len() int {
	return len(l)
}

func (l List) At(i int) Message {
	return l[i]
}

// IDs returns the message ids in list order.
func (l List) IDs() []string {
	ids := make([]string, len(l))
	for i, m := range l {
		ids[i] = m.ID
	}
	return ids
}

// Index returns the position of the message with the given id, or -1.
func (l List) Index(id string) int {
	for i, m := range l {
		if m.ID == id {
			return i
		}
	}
	return -1
}
