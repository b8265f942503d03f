package chat

import (
	"regexp"
	"strings"
)

// Sentence boundaries: runs of terminal punctuation, the standalone
// conjunction "e", and a comma directly followed by a purchase verb
// ("quero um temaki, quero um combo"). Go's regexp has no lookahead, so
// the comma+verb case is pre-marked with a NUL sentinel that keeps the
// verb inside the following fragment.
var (
	purchaseVerbRe = regexp.MustCompile(`,\s*(quero|preciso|gostaria|vou)`)
	boundaryRe     = regexp.MustCompile("[.!?;]+|\\s+e\\s+|\x00")
)

// SplitSentences splits a raw message into trimmed, non-empty fragments.
// If nothing survives the split, the whole message is one sentence, so the
// result always has at least one element.
func SplitSentences(message string) []string {
	marked := purchaseVerbRe.ReplaceAllString(message, "\x00$1")
	var sentences []string
	for _, part := range boundaryRe.Split(marked, -1) {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return []string{message}
	}
	return sentences
}
