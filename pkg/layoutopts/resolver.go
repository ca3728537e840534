package layoutopts

import (
	"sort"
	"time"

	"github.com/killallgit/chatlist/pkg/chat"
	"github.com/killallgit/chatlist/pkg/logger"
)

// DefaultMaxTimeIntervalBetweenMessagesInGroup is the widest gap between two
// messages of one author that still keeps them in the same run.
const DefaultMaxTimeIntervalBetweenMessagesInGroup = 60 * time.Second

// DefaultSupportedReactions are the reaction types the default theme can draw.
var DefaultSupportedReactions = []string{"like", "love", "haha", "wow", "sad"}

// Config tunes a Resolver.
type Config struct {
	MaxTimeIntervalBetweenMessagesInGroup time.Duration
	// SupportedReactions lists the reaction types that can be drawn. Others
	// never count towards the reactions option.
	SupportedReactions []string
	// JumbomojiLimit is the largest number of emoji a message may consist of
	// and still be drawn without a bubble. Zero disables it.
	JumbomojiLimit int
}

func DefaultConfig() Config {
	return Config{
		MaxTimeIntervalBetweenMessagesInGroup: DefaultMaxTimeIntervalBetweenMessagesInGroup,
		SupportedReactions:                    DefaultSupportedReactions,
		JumbomojiLimit:                        3,
	}
}

// Resolver decides the layout options of each message in a list.
type Resolver struct {
	maxInterval time.Duration
	supported   map[string]struct{}
	jumbomoji   int
}

func NewResolver(cfg Config) *Resolver {
	supported := make(map[string]struct{}, len(cfg.SupportedReactions))
	for _, r := range cfg.SupportedReactions {
		supported[r] = struct{}{}
	}
	return &Resolver{
		maxInterval: cfg.MaxTimeIntervalBetweenMessagesInGroup,
		supported:   supported,
		jumbomoji:   cfg.JumbomojiLimit,
	}
}

func (r *Resolver) MaxTimeIntervalBetweenMessagesInGroup() time.Duration {
	return r.maxInterval
}

// OptionsForMessage returns the options for the message at index. A stale
// index yields an empty set.
func (r *Resolver) OptionsForMessage(index int, channel chat.Channel, messages chat.Messages) Options {
	if index < 0 || index >= messages.Len() {
		logger.Debug("layout options requested for index %d of %d messages", index, messages.Len())
		return 0
	}

	message := messages.At(index)

	if message.Type.IsOneOf(chat.MessageTypeSystem, chat.MessageTypeError) {
		return Centered | Text
	}

	isLastInSequence := r.IsMessageLastInSequence(index, messages)
	isDeleted := message.IsDeleted()
	isThreadMessage := message.IsRootOfThread() || message.IsPartOfThread()

	var options Options

	if message.IsSentByCurrentUser {
		options.Insert(Flipped)
	}
	if !r.isJumbomoji(message) {
		options.Insert(Bubble)
	}
	if !isLastInSequence || isThreadMessage {
		options.Insert(ContinuousBubble)
	}
	if !isLastInSequence && !message.IsSentByCurrentUser {
		options.Insert(AvatarSizePadding)
	}
	if isLastInSequence {
		options.Insert(Timestamp)
	}
	if isLastInSequence && !message.IsSentByCurrentUser && !isDeleted {
		options.Insert(Avatar)
		if channel.MemberCount > 2 {
			options.Insert(AuthorName)
		}
	}
	if onlyVisibleToCurrentUser(message, channel) {
		options.Insert(OnlyVisibleToYouIndicator)
	}
	if (message.HasText() && message.Type != chat.MessageTypeEphemeral) || isDeleted {
		options.Insert(Text)
	}

	if isDeleted {
		return options
	}

	if message.HasQuotedMessage() {
		options.Insert(QuotedMessage)
	}
	if isThreadMessage && channel.RepliesEnabled {
		options.Insert(ThreadInfo)
	}
	if channel.ReactionsEnabled && r.hasSupportedReactions(message) {
		options.Insert(Reactions)
	}
	if message.LastActionFailed {
		options.Insert(ErrorIndicator)
	}
	if isLastInSequence && isDeliveryStatusVisible(message, channel) {
		options.Insert(DeliveryStatusIndicator)
	}

	return options
}

// IsMessageLastInSequence reports whether the message at index closes its
// run. The run continues into the message sent right after it (index-1) when
// that message has the same author, is not an error, ephemeral or system
// message, and was sent no later than the max interval after it.
func (r *Resolver) IsMessageLastInSequence(index int, messages chat.Messages) bool {
	if index <= 0 || index >= messages.Len() {
		return true
	}

	message := messages.At(index)
	next := messages.At(index - 1)

	if next.AuthorID != message.AuthorID {
		return true
	}
	if next.Type.IsOneOf(chat.MessageTypeError, chat.MessageTypeEphemeral, chat.MessageTypeSystem) {
		return true
	}

	return next.CreatedAt.Sub(message.CreatedAt) > r.maxInterval
}

func (r *Resolver) isJumbomoji(message chat.Message) bool {
	if r.jumbomoji <= 0 || message.IsDeleted() || message.HasQuotedMessage() {
		return false
	}
	n := emojiCount(message.Text)
	return n > 0 && n <= r.jumbomoji
}

func (r *Resolver) hasSupportedReactions(message chat.Message) bool {
	if len(message.ReactionScores) == 0 {
		return false
	}

	types := make([]string, 0, len(message.ReactionScores))
	for t := range message.ReactionScores {
		types = append(types, t)
	}
	sort.Strings(types)

	found := false
	for _, t := range types {
		if _, ok := r.supported[t]; ok {
			found = true
			continue
		}
		logger.Warn("reaction type %q on message %s has no appearance and is not shown", t, message.ID)
	}
	return found
}

func onlyVisibleToCurrentUser(message chat.Message, channel chat.Channel) bool {
	if !message.IsSentByCurrentUser {
		return false
	}
	if message.IsDeleted() {
		return channel.DeletedMessagesVisibility == chat.DeletedMessagesVisibleForCurrentUser
	}
	return message.Type == chat.MessageTypeEphemeral
}

// isDeliveryStatusVisible reports whether the status of an own message is
// shown. Failed and ephemeral messages never carry one.
func isDeliveryStatusVisible(message chat.Message, channel chat.Channel) bool {
	if !message.IsSentByCurrentUser || message.LastActionFailed || message.Type == chat.MessageTypeEphemeral {
		return false
	}
	if message.DeliveryStatus == nil {
		return false
	}
	switch *message.DeliveryStatus {
	case chat.DeliveryStatusPending:
		return true
	case chat.DeliveryStatusSent, chat.DeliveryStatusRead:
		return channel.ReadEventsEnabled
	default:
		return false
	}
}
