// File: sushichat/services/chat/engine.go
package chat

import (
	"context"
	"math/rand"
	"strings"

	"sushichat/models"
	"sushichat/services/recipe"

	"go.uber.org/zap"
)

// Engine classifies a customer message and composes the reply for one chat
// turn. Implementations must be safe for concurrent use: every call is a
// pure function of the request plus the immutable catalogs.
type Engine interface {
	Respond(ctx context.Context, req models.ChatRequest) *models.ChatResponse
}

// DefaultChatEngine is the similarity-based implementation. Construct once
// at startup and share; it holds no per-request state.
type DefaultChatEngine struct {
	Catalog *models.IntentCatalog
	Recipes recipe.Service
	// APIKey is the configured Gemini credential used when the caller
	// supplies none with a dish selection.
	APIKey string
	Logger *zap.Logger
	// Pick selects a reply index in [0,n). Overridable so tests can pin
	// template selection.
	Pick func(n int) int

	ranked []rankedIntent
}

func NewDefaultChatEngine(catalog *models.IntentCatalog, recipes recipe.Service, apiKey string, logger *zap.Logger) *DefaultChatEngine {
	// Pre-normalize every pattern so ranking a request only tokenizes the
	// utterance itself.
	ranked := make([]rankedIntent, 0, len(catalog.Intents))
	for _, intent := range catalog.Intents {
		patterns := make([][]string, 0, len(intent.Patterns))
		for _, p := range intent.Patterns {
			patterns = append(patterns, Normalize(p))
		}
		ranked = append(ranked, rankedIntent{tag: intent.Tag, patterns: patterns})
	}

	return &DefaultChatEngine{
		Catalog: catalog,
		Recipes: recipes,
		APIKey:  apiKey,
		Logger:  logger,
		Pick:    rand.Intn,
		ranked:  ranked,
	}
}

// Respond handles one chat turn: segment the message, classify each
// sentence, compose and deduplicate replies, and report the best-scoring
// intent. A pending dish selection bypasses classification and resolves the
// ingredient sub-dialogue instead.
func (e *DefaultChatEngine) Respond(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	if req.PendingSelection != "" {
		return e.resolveSelection(ctx, req)
	}

	sentences := SplitSentences(strings.TrimSpace(req.Message))

	var (
		responses []string
		intents   []string
		probs     []float64
	)
	for _, sentence := range sentences {
		tag, prob := e.classify(sentence)
		intents = append(intents, tag)
		probs = append(probs, prob)

		// The ingredients intent opens the sub-dialogue and short-circuits
		// the rest of the turn.
		if tag == intentIngredients {
			e.Logger.Debug("ingredient sub-dialogue opened",
				zap.String("sentence", sentence))
			return e.presentRecipeMenu(req, sentences, intents, probs)
		}

		if reply, ok := e.composeReply(sentence, tag, responses); ok {
			responses = append(responses, reply)
		}
	}

	mainIntent, mainProb := primaryIntent(intents, probs)

	return &models.ChatResponse{
		Response:           joinResponses(responses),
		Intent:             mainIntent,
		Probability:        scaleConfidence(mainProb),
		AllIntents:         intents,
		AllProbabilities:   scaleAll(probs),
		SentencesProcessed: len(sentences),
		MultipleSentences:  len(sentences) > 1,
	}
}
