package chat

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sushichat/models"
)

// recipeMenu is the fixed dish list offered by the ingredient sub-dialogue.
// Independent from the extractor's matching catalog: this one is what the
// kitchen can explain, not what the order parser can recognize.
var recipeMenu = []string{
	"lasanha", "feijoada", "moqueca", "spaghetti alla carbonara",
	"yakissoba", "sushi", "temaki", "ramen", "hot roll", "combo família",
}

const (
	missingCredentialNote = "Nenhuma chave da API Gemini está configurada. Envie sua credencial junto com a seleção."
	invalidSelectionReply = "Seleção inválida. Tente novamente com o número ou o nome de um dos pratos listados."
)

var digitsRe = regexp.MustCompile(`\d+`)

// presentRecipeMenu is the first half of the sub-dialogue: any sentence
// classified as "ingredientes" short-circuits the turn with the numbered
// dish menu. The caller round-trips the selection in the next request;
// no server-side state is kept.
func (e *DefaultChatEngine) presentRecipeMenu(req models.ChatRequest, sentences, intents []string, probs []float64) *models.ChatResponse {
	var b strings.Builder
	b.WriteString("Pratos disponíveis:\n")
	for i, dish := range recipeMenu {
		fmt.Fprintf(&b, "%d. %s\n", i+1, dish)
	}
	b.WriteString("Escolha o número do prato (ou vários números separados por vírgula).")
	if req.Credential == "" && e.APIKey == "" {
		b.WriteString("\n\n" + missingCredentialNote)
	}

	return &models.ChatResponse{
		Response:              b.String(),
		Intent:                intentIngredients,
		Probability:           100.0,
		AllIntents:            intents,
		AllProbabilities:      scaleAll(probs),
		SentencesProcessed:    len(sentences),
		MultipleSentences:     len(sentences) > 1,
		AwaitingDishSelection: true,
	}
}

// resolveSelection is the second half: the caller supplied a pending
// selection, so classification is bypassed entirely. Numbers are tried
// first (1-indexed into the menu, duplicates collapsed, out-of-range
// ignored), then case-insensitive containment against the dish names. An
// unparseable selection keeps the sub-dialogue waiting.
func (e *DefaultChatEngine) resolveSelection(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	selected := parseSelection(req.PendingSelection)
	if len(selected) == 0 {
		return &models.ChatResponse{
			Response:              invalidSelectionReply,
			Intent:                intentIngredients,
			Probability:           100.0,
			AllIntents:            []string{intentIngredients},
			AllProbabilities:      []float64{100.0},
			SentencesProcessed:    1,
			AwaitingDishSelection: true,
		}
	}

	apiKey := req.Credential
	if apiKey == "" {
		apiKey = e.APIKey
	}

	// One lookup per dish; a failed lookup is already a textual notice in
	// that dish's section and never aborts the others.
	sections := make([]string, 0, len(selected))
	for _, dish := range selected {
		recipe := e.Recipes.Lookup(ctx, dish, apiKey)
		sections = append(sections, titleCase(dish)+":\n"+recipe)
	}

	return &models.ChatResponse{
		Response:              strings.Join(sections, "\n\n"),
		Intent:                intentIngredients,
		Probability:           100.0,
		AllIntents:            []string{intentIngredients},
		AllProbabilities:      []float64{100.0},
		SentencesProcessed:    1,
		AwaitingDishSelection: false,
	}
}

// parseSelection maps the caller's selection text to menu dishes.
func parseSelection(selection string) []string {
	var dishes []string
	seen := make(map[string]bool)

	for _, raw := range digitsRe.FindAllString(selection, -1) {
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 1 || idx > len(recipeMenu) {
			continue
		}
		dish := recipeMenu[idx-1]
		if !seen[dish] {
			seen[dish] = true
			dishes = append(dishes, dish)
		}
	}
	if len(dishes) > 0 {
		return dishes
	}

	// No usable numbers: match the text against the dish names, either
	// direction of containment.
	lower := strings.ToLower(strings.TrimSpace(selection))
	if lower == "" {
		return nil
	}
	for _, dish := range recipeMenu {
		if strings.Contains(lower, dish) || strings.Contains(dish, lower) {
			if !seen[dish] {
				seen[dish] = true
				dishes = append(dishes, dish)
			}
		}
	}
	return dishes
}

func scaleAll(probs []float64) []float64 {
	scaled := make([]float64, len(probs))
	for i, p := range probs {
		scaled[i] = scaleConfidence(p)
	}
	return scaled
}
