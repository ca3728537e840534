package chat

import (
	"fmt"
	"strings"
)

// DeletedMessageVisibility controls who still sees a message after deletion.
type DeletedMessageVisibility string

const (
	DeletedMessagesAlwaysVisible         DeletedMessageVisibility = "alwaysVisible"
	DeletedMessagesVisibleForCurrentUser DeletedMessageVisibility = "visibleForCurrentUser"
	DeletedMessagesAlwaysHidden          DeletedMessageVisibility = "alwaysHidden"
)

func ParseDeletedMessageVisibility(s string) (DeletedMessageVisibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "visibleforcurrentuser", "visible_for_current_user":
		return DeletedMessagesVisibleForCurrentUser, nil
	case "alwaysvisible", "always_visible":
		return DeletedMessagesAlwaysVisible, nil
	case "alwayshidden", "always_hidden":
		return DeletedMessagesAlwaysHidden, nil
	default:
		return "", fmt.Errorf("unknown deleted message visibility %q", s)
	}
}

// Channel carries the channel-level settings the list layout depends on.
type Channel struct {
	ID                        string
	MemberCount               int
	RepliesEnabled            bool
	ReactionsEnabled          bool
	ReadEventsEnabled         bool
	DeletedMessagesVisibility DeletedMessageVisibility
}

// NewChannel returns a channel with every feature enabled, the defaults a
// messaging channel is created with.
func NewChannel(id string, memberCount int) Channel {
	return Channel{
		ID:                        id,
		MemberCount:               memberCount,
		RepliesEnabled:            true,
		ReactionsEnabled:          true,
		ReadEventsEnabled:         true,
		DeletedMessagesVisibility: DeletedMessagesVisibleForCurrentUser,
	}
}
