package chat

import (
	"context"
	"strings"
	"testing"

	"sushichat/models"
	"sushichat/services/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRecipeService records lookups and answers with a canned recipe.
type stubRecipeService struct {
	calls []string
	keys  []string
}

var _ recipe.Service = (*stubRecipeService)(nil)

func (s *stubRecipeService) Lookup(_ context.Context, dishName, apiKey string) string {
	s.calls = append(s.calls, dishName)
	s.keys = append(s.keys, apiKey)
	return "Ingredientes de " + dishName
}

// newTestEngine loads the real catalog and pins reply selection to the
// first template so assertions are deterministic.
func newTestEngine(t *testing.T, recipes recipe.Service) *DefaultChatEngine {
	t.Helper()
	catalog, err := LoadCatalog("../../data/intents.json")
	require.NoError(t, err)
	eng := NewDefaultChatEngine(catalog, recipes, "", zap.NewNop())
	eng.Pick = func(int) int { return 0 }
	return eng
}

func TestRespondCompoundUtterance(t *testing.T) {
	eng := newTestEngine(t, &stubRecipeService{})

	resp := eng.Respond(context.Background(), models.ChatRequest{
		Message: "Oi, quero um temaki salmão grelhado e qual o preço do combo família?",
	})

	assert.Equal(t, 3, resp.SentencesProcessed)
	assert.True(t, resp.MultipleSentences)
	assert.Equal(t, []string{"cumprimento", "compra", "precos"}, resp.AllIntents)
	assert.Equal(t, []float64{30.0, 50.0, 33.33}, resp.AllProbabilities)
	// The purchase sentence carries the highest confidence of the turn.
	assert.Equal(t, "compra", resp.Intent)
	assert.Equal(t, 50.0, resp.Probability)
	assert.False(t, resp.AwaitingDishSelection)

	// One greeting, one purchase confirmation naming the dish, one price
	// reply, joined by blank lines.
	lower := strings.ToLower(resp.Response)
	assert.Equal(t, 1, strings.Count(lower, "bem-vindo"))
	assert.Contains(t, resp.Response, "Temaki Salmão Grelhado")
	assert.Contains(t, resp.Response, "Pedido anotado!")
	assert.Contains(t, resp.Response, "R$")
	assert.Equal(t, 3, len(strings.Split(resp.Response, "\n\n")))
}

func TestRespondGreetingEmittedOncePerTurn(t *testing.T) {
	eng := newTestEngine(t, &stubRecipeService{})

	resp := eng.Respond(context.Background(), models.ChatRequest{Message: "Oi! Olá!"})

	assert.Equal(t, 2, resp.SentencesProcessed)
	assert.Equal(t, []string{"cumprimento", "cumprimento"}, resp.AllIntents)
	lower := strings.ToLower(resp.Response)
	assert.Equal(t, 1, strings.Count(lower, "bem-vindo"))
	assert.NotContains(t, resp.Response, "\n\n")
}

func TestRespondUnknownUtterance(t *testing.T) {
	eng := newTestEngine(t, &stubRecipeService{})

	resp := eng.Respond(context.Background(), models.ChatRequest{Message: "zzz plft"})

	assert.Equal(t, UnknownIntent, resp.Intent)
	assert.Equal(t, 0.0, resp.Probability)
	assert.Equal(t, sentenceFallback, resp.Response)
}

func TestRespondIngredientsOpensSubDialogue(t *testing.T) {
	eng := newTestEngine(t, &stubRecipeService{})

	resp := eng.Respond(context.Background(), models.ChatRequest{
		Message: "Quais os ingredientes do yakissoba?",
	})

	assert.True(t, resp.AwaitingDishSelection)
	assert.Equal(t, intentIngredients, resp.Intent)
	assert.Equal(t, 100.0, resp.Probability)
	assert.Contains(t, resp.Response, "Pratos disponíveis:")
	assert.Contains(t, resp.Response, "1. lasanha")
	assert.Contains(t, resp.Response, "10. combo família")
	// No credential configured anywhere, so the menu carries the notice.
	assert.Contains(t, resp.Response, missingCredentialNote)
}

func TestRespondResolvesNumericSelection(t *testing.T) {
	stub := &stubRecipeService{}
	eng := newTestEngine(t, stub)

	resp := eng.Respond(context.Background(), models.ChatRequest{
		Message:          "1,3",
		PendingSelection: "1,3",
		Credential:       "test-key",
	})

	assert.False(t, resp.AwaitingDishSelection)
	assert.Equal(t, intentIngredients, resp.Intent)
	assert.Equal(t, []string{"lasanha", "moqueca"}, stub.calls)
	assert.Equal(t, []string{"test-key", "test-key"}, stub.keys)

	// Sections come back in menu order, headed by title-cased dish names.
	assert.Contains(t, resp.Response, "Lasanha:\nIngredientes de lasanha")
	assert.Contains(t, resp.Response, "Moqueca:\nIngredientes de moqueca")
	assert.Less(t, strings.Index(resp.Response, "Lasanha:"), strings.Index(resp.Response, "Moqueca:"))
}

func TestRespondResolvesNameSelection(t *testing.T) {
	stub := &stubRecipeService{}
	eng := newTestEngine(t, stub)

	resp := eng.Respond(context.Background(), models.ChatRequest{
		Message:          "quero o sushi",
		PendingSelection: "quero o sushi",
		Credential:       "test-key",
	})

	assert.False(t, resp.AwaitingDishSelection)
	assert.Equal(t, []string{"sushi"}, stub.calls)
	assert.Contains(t, resp.Response, "Sushi:\nIngredientes de sushi")
}

func TestRespondInvalidSelectionKeepsWaiting(t *testing.T) {
	stub := &stubRecipeService{}
	eng := newTestEngine(t, stub)

	resp := eng.Respond(context.Background(), models.ChatRequest{
		Message:          "99",
		PendingSelection: "99",
		Credential:       "test-key",
	})

	assert.True(t, resp.AwaitingDishSelection)
	assert.Empty(t, stub.calls)
	assert.Equal(t, invalidSelectionReply, resp.Response)
}

func TestRespondSelectionFallsBackToConfiguredKey(t *testing.T) {
	stub := &stubRecipeService{}
	eng := newTestEngine(t, stub)
	eng.APIKey = "configured-key"

	eng.Respond(context.Background(), models.ChatRequest{
		Message:          "2",
		PendingSelection: "2",
	})

	assert.Equal(t, []string{"feijoada"}, stub.calls)
	assert.Equal(t, []string{"configured-key"}, stub.keys)
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		want      []string
	}{
		{
			name:      "comma separated numbers",
			selection: "1, 3",
			want:      []string{"lasanha", "moqueca"},
		},
		{
			name:      "duplicates collapse",
			selection: "2 2 2",
			want:      []string{"feijoada"},
		},
		{
			name:      "out of range ignored",
			selection: "1, 42",
			want:      []string{"lasanha"},
		},
		{
			name:      "name containment",
			selection: "Ramen",
			want:      []string{"ramen"},
		},
		{
			name:      "selection contained in dish name",
			selection: "carbonara",
			want:      []string{"spaghetti alla carbonara"},
		},
		{
			name:      "nothing usable",
			selection: "nada disso",
			want:      nil,
		},
		{
			name:      "empty",
			selection: "   ",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSelection(tt.selection))
		})
	}
}
