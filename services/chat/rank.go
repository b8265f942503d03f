package chat

import (
	"math"
	"strings"
)

// Well-known intent tags the composer and sub-dialogue branch on.
const (
	intentGreeting    = "cumprimento"
	intentPurchase    = "compra"
	intentMenu        = "itens_disponiveis"
	intentIngredients = "ingredientes"

	// UnknownIntent is the sentinel tag used when neither the ranker nor
	// the keyword fallback can place an utterance.
	UnknownIntent = "desconhecido"
)

// Tuning constants for the ranker/fallback handoff. Empirically chosen;
// kept exact for compatibility with the deployed catalog, not derived from
// anything structural.
const (
	similarityFloor  = 0.10
	keywordHitWeight = 0.3
	keywordScoreCap  = 0.8
)

// rankedIntent is an intent with its example patterns pre-normalized at
// engine construction, so per-request ranking only tokenizes the utterance.
type rankedIntent struct {
	tag      string
	patterns [][]string
}

// classify scores one sub-utterance against every intent's patterns and
// returns the best tag with its [0,1] confidence. Each intent scores the
// maximum similarity over its patterns; ties between intents resolve to
// catalog order. Below the confidence floor the keyword fallback decides.
func (e *DefaultChatEngine) classify(sentence string) (string, float64) {
	words := Normalize(sentence)

	bestTag := UnknownIntent
	bestScore := 0.0
	for _, intent := range e.ranked {
		maxSim := 0.0
		for _, pattern := range intent.patterns {
			if s := Similarity(words, pattern); s > maxSim {
				maxSim = s
			}
		}
		if maxSim > bestScore {
			bestScore = maxSim
			bestTag = intent.tag
		}
	}

	if bestScore < similarityFloor {
		return keywordFallback(strings.ToLower(sentence))
	}
	return bestTag, bestScore
}

// keywordSet pairs an intent tag with its literal keyword table. A slice,
// not a map: declaration order breaks ties deterministically.
type keywordSet struct {
	tag      string
	keywords []string
}

var fallbackKeywords = []keywordSet{
	{intentGreeting, []string{"oi", "olá", "ola", "hello", "hey", "bom dia", "boa tarde", "boa noite"}},
	{intentPurchase, []string{
		"quero", "pedir", "comprar", "pedido", "vou querer",
		// Sushis.
		"salmão", "salmao", "salmon", "sake",
		"atum", "tuna", "maguro",
		"kani", "caranguejo", "surimi",
		"philadelphia", "filadélfia", "cream cheese",
		// Temakis.
		"temaki", "temaki salmão", "temaki atum", "temaki kani",
		"hot roll", "hot philadelphia", "hot", "hott",
		"califórnia", "california", "california roll",
		"atum spicy", "spicy tuna", "spicy",
		"salmão grelhado", "salmao grelhado", "grilled salmon",
		// Pratos quentes.
		"yakissoba", "yakisoba", "yaki soba", "macarrão japonês",
		"udon", "macarrão udon", "sopa udon",
		"teriyaki", "teriyaki chicken", "frango teriyaki",
		// Combinados.
		"combo", "combinado", "combo salmão", "combo salmao",
		"combo misto", "combo família", "combo familia",
		"combo atum", "rodízio", "festival",
		// Frases completas.
		"quero salmão", "quero atum", "quero temaki", "quero yakissoba",
		"quero combo", "quero udon", "quero hot roll", "quero califórnia",
	}},
	{intentMenu, []string{"cardápio", "menu", "sabores", "sushis", "opções", "tem", "pratos", "temakis", "yakissoba", "combinados"}},
	{"precos", []string{"preço", "preco", "valor", "custa", "quanto"}},
	{"tempo_entrega", []string{"tempo", "entrega", "demora", "prazo", "quando"}},
	{"agradecimento", []string{"obrigado", "obrigada", "valeu", "brigado", "thanks"}},
	{"reclamacao", []string{"problema", "reclamação", "ruim", "fria", "errada", "atrasada"}},
	{"despedida", []string{"tchau", "bye", "até logo", "falou", "até mais", "adeus"}},
}

// keywordFallback is the secondary classifier for utterances the pattern
// ranker scores below the floor. Each intent counts how many of its keyword
// literals occur as substrings of the lowercased message; the raw hit count
// c maps to min(0.8, c*0.3), keeping fallback confidence below the ranker's
// high-confidence range.
func keywordFallback(message string) (string, float64) {
	bestTag := UnknownIntent
	bestHits := 0
	for _, ks := range fallbackKeywords {
		hits := 0
		for _, kw := range ks.keywords {
			if strings.Contains(message, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestTag = ks.tag
		}
	}

	if bestHits == 0 {
		return bestTag, 0.0
	}
	return bestTag, math.Min(keywordScoreCap, float64(bestHits)*keywordHitWeight)
}
