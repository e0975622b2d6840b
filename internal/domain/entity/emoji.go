package entity

import "strings"

// DefaultEmoji is shown for labels without a mapping
const DefaultEmoji = "🟦"

// emojiMap maps emotion labels to display glyphs. Keys are lowercase; lookup
// is case-insensitive because models disagree on label casing.
var emojiMap = map[string]string{
	"joy":             "😄",
	"happy":           "😄",
	"sadness":         "😢",
	"sad":             "😢",
	"anger":           "😡",
	"anger/annoyance": "😡",
	"disgust":         "🤢",
	"fear":            "😨",
	"surprise":        "😲",
	"neutral":         "😐",
	"love":            "❤️",
	"enthusiasm":      "🤩",
}

// LabelEmoji returns the display glyph for an emotion label
func LabelEmoji(label string) string {
	if emoji, ok := emojiMap[strings.ToLower(label)]; ok {
		return emoji
	}
	return DefaultEmoji
}
