// File: sushichat/models/chat.go
package models

// Intent is one conversational category from the catalog: a unique tag,
// example patterns used for ranking, and candidate reply templates.
type Intent struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// IntentCatalog is the static intent catalog, loaded once at startup and
// shared read-only by all requests.
type IntentCatalog struct {
	Intents []Intent `json:"intents"`
}

// Responses returns the reply templates for a tag, or false if the tag is
// not in the catalog.
func (c *IntentCatalog) Responses(tag string) ([]string, bool) {
	for _, intent := range c.Intents {
		if intent.Tag == tag {
			return intent.Responses, true
		}
	}
	return nil, false
}

// ChatRequest is the caller-facing request for one chat turn. The optional
// sub-dialogue fields carry the ingredient-selection state between turns;
// the server itself holds no session state.
type ChatRequest struct {
	Message          string `json:"message" binding:"required"`
	PendingSelection string `json:"pending_selection,omitempty"`
	Credential       string `json:"credential,omitempty"`
}

// ChatResponse is the turn result returned to the caller. Probabilities are
// on a 0-100 scale, rounded to two decimals.
type ChatResponse struct {
	Response              string    `json:"response"`
	Intent                string    `json:"intent"`
	Probability           float64   `json:"probability"`
	AllIntents            []string  `json:"all_intents"`
	AllProbabilities      []float64 `json:"all_probabilities"`
	SentencesProcessed    int       `json:"sentences_processed"`
	MultipleSentences     bool      `json:"multiple_sentences"`
	AwaitingDishSelection bool      `json:"awaiting_dish_selection"`
}
