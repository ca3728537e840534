package layoutopts

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// emojiCount returns the number of emoji grapheme clusters in text, or -1 if
// text contains anything other than emoji and whitespace.
func emojiCount(text string) int {
	count := 0
	g := uniseg.NewGraphemes(strings.TrimSpace(text))
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		if unicode.IsSpace(runes[0]) {
			continue
		}
		if !isEmojiCluster(runes) {
			return -1
		}
		count++
	}
	return count
}

// isEmojiCluster also accepts clusters that only turn into emoji through a
// presentation selector or a keycap, such as "1️⃣" or "#️⃣".
func isEmojiCluster(runes []rune) bool {
	if isEmojiRune(runes[0]) {
		return true
	}
	for _, r := range runes[1:] {
		if r == 0xFE0F || r == 0x20E3 {
			return true
		}
	}
	return false
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0x00A9 || r == 0x00AE || r == 0x203C || r == 0x2049:
		return true
	}
	return unicode.Is(unicode.So, r) && r > 0x2000
}
