package chat

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	purchaseTemplate    = "Pedido anotado! Seu(a) %s está sendo preparado(a) pelo nosso sushiman. Deseja adicionar algo mais? 🍣"
	sentenceFallback    = "Desculpe, não entendi muito bem. Pode me falar mais sobre o que você precisa?"
	emptyTurnFallback   = "Desculpe, não entendi. Pode repetir?"
	dedupeOverlapFactor = 0.6
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

func titleCase(s string) string {
	return titleCaser.String(s)
}

// composeReply selects the reply for one classified sub-utterance. The false
// return means the reply is deliberately suppressed (a repeated greeting
// within the same turn).
func (e *DefaultChatEngine) composeReply(sentence, tag string, emitted []string) (string, bool) {
	dish := ExtractDish(sentence)

	// Purchase with a recognized dish confirms the order directly.
	if tag == intentPurchase && dish != "" {
		return fmt.Sprintf(purchaseTemplate, titleCase(dish)), true
	}

	// Greet at most once per turn.
	if tag == intentGreeting && greetingAlreadySent(emitted) {
		return "", false
	}

	if replies, ok := e.Catalog.Responses(tag); ok {
		return replies[e.Pick(len(replies))], true
	}
	return sentenceFallback, true
}

// greetingAlreadySent reports whether a greeting-flavored reply is already
// among the composed replies, detected by the markers the greeting
// templates carry.
func greetingAlreadySent(emitted []string) bool {
	for _, r := range emitted {
		lower := strings.ToLower(r)
		if strings.Contains(lower, "bem-vindo") || strings.Contains(lower, "konnichiwa") {
			return true
		}
	}
	return false
}

// dedupeResponses walks the composed replies in order, keeping a reply only
// if its token overlap with every already-kept reply stays at or below 60%
// of its own token count. Near-identical templates picked for similar
// intents across sentences collapse to the first occurrence.
func dedupeResponses(responses []string) []string {
	var kept []string
	for _, r := range responses {
		words := strings.Fields(r)
		rset := make(map[string]bool, len(words))
		for _, w := range words {
			rset[w] = true
		}

		similar := false
		for _, existing := range kept {
			common := 0
			eset := make(map[string]bool)
			for _, w := range strings.Fields(existing) {
				eset[w] = true
			}
			for w := range rset {
				if eset[w] {
					common++
				}
			}
			if float64(common) > float64(len(words))*dedupeOverlapFactor {
				similar = true
				break
			}
		}
		if !similar {
			kept = append(kept, r)
		}
	}
	return kept
}

// joinResponses deduplicates and joins the surviving replies with blank
// lines; an empty turn falls back to the didn't-understand reply.
func joinResponses(responses []string) string {
	final := dedupeResponses(responses)
	if len(final) == 0 {
		return emptyTurnFallback
	}
	return strings.Join(final, "\n\n")
}

// primaryIntent picks the sub-utterance with the single highest confidence;
// ties resolve to sentence order.
func primaryIntent(intents []string, probs []float64) (string, float64) {
	if len(probs) == 0 {
		return UnknownIntent, 0.0
	}
	bestIdx := 0
	for i, p := range probs {
		if p > probs[bestIdx] {
			bestIdx = i
		}
	}
	return intents[bestIdx], probs[bestIdx]
}

// scaleConfidence converts a [0,1] confidence to the 0-100 range reported
// to callers, rounded to two decimals.
func scaleConfidence(p float64) float64 {
	return math.Round(p*100*100) / 100
}
