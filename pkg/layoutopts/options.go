package layoutopts

import (
	"fmt"
	"sort"
	"strings"
)

// Options describes which parts of a message row are present. Two rows with
// equal Options render with the same template.
type Options uint16

const (
	Flipped Options = 1 << iota
	Bubble
	ContinuousBubble
	AvatarSizePadding
	Avatar
	Timestamp
	AuthorName
	OnlyVisibleToYouIndicator
	Text
	QuotedMessage
	ThreadInfo
	Reactions
	ErrorIndicator
	DeliveryStatusIndicator
	Centered

	optionsEnd
)

var optionNames = map[Options]string{
	Flipped:                   "flipped",
	Bubble:                    "bubble",
	ContinuousBubble:          "continuousBubble",
	AvatarSizePadding:         "avatarSizePadding",
	Avatar:                    "avatar",
	Timestamp:                 "timestamp",
	AuthorName:                "authorName",
	OnlyVisibleToYouIndicator: "onlyVisibleToYouIndicator",
	Text:                      "text",
	QuotedMessage:             "quotedMessage",
	ThreadInfo:                "threadInfo",
	Reactions:                 "reactions",
	ErrorIndicator:            "errorIndicator",
	DeliveryStatusIndicator:   "deliveryStatusIndicator",
	Centered:                  "centered",
}

// All is every defined option.
const All = optionsEnd - 1

func (o Options) Contains(other Options) bool {
	return o&other == other
}

func (o *Options) Insert(other Options) {
	*o |= other
}

func (o *Options) Remove(other Options) {
	*o &^= other
}

func (o Options) IsEmpty() bool {
	return o == 0
}

// Names returns the names of the set options in lexical order.
func (o Options) Names() []string {
	names := make([]string, 0, len(optionNames))
	for flag := Options(1); flag < optionsEnd; flag <<= 1 {
		if o.Contains(flag) {
			names = append(names, optionNames[flag])
		}
	}
	sort.Strings(names)
	return names
}

// Identifier is the reuse key for the template that renders these options.
func (o Options) Identifier() string {
	return strings.Join(o.Names(), "-")
}

func (o Options) String() string {
	return "[" + strings.Join(o.Names(), ", ") + "]"
}

// ParseOptions is the inverse of Identifier.
func ParseOptions(identifier string) (Options, error) {
	var o Options
	if identifier == "" {
		return o, nil
	}
	for _, name := range strings.Split(identifier, "-") {
		flag, ok := optionByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown layout option %q", name)
		}
		o.Insert(flag)
	}
	return o, nil
}

func optionByName(name string) (Options, bool) {
	for flag, n := range optionNames {
		if n == name {
			return flag, true
		}
	}
	return 0, false
}
