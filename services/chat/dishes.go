package chat

import (
	"strings"
	"unicode/utf8"
)

// dishCatalog is the literal menu-item list scanned by ExtractDish. Entries
// deliberately duplicate synonyms and common misspellings so a raw substring
// scan catches them; list order only decides ties (earlier entry wins when
// two matches have the same length).
var dishCatalog = []string{
	// Sushis tradicionais.
	"philadelphia", "filadélfia", "cream cheese philadelphia",
	"sushi de salmão", "sushi salmão", "salmão", "salmao", "salmon", "sake",
	"sushi de atum", "sushi atum", "atum", "tuna", "maguro",
	"sushi de kani", "sushi kani", "kani", "caranguejo", "surimi",

	// Temakis especiais.
	"temaki hot philadelphia", "hot philadelphia", "hot roll",
	"temaki salmão grelhado", "salmão grelhado", "salmao grelhado", "grilled salmon",
	"temaki califórnia", "temaki california", "califórnia", "california", "california roll",
	"temaki atum spicy", "atum spicy", "spicy tuna", "spicy",
	"temaki salmão", "temaki salmao",
	"temaki atum", "temaki kani", "temaki",

	// Pratos quentes.
	"yakissoba de frango", "yakissoba frango", "yakissoba carne", "yakissoba misto",
	"yakissoba", "yakisoba", "yaki soba", "macarrão japonês",
	"udon de frango", "udon carne", "udon vegetariano", "udon",
	"macarrão udon", "sopa udon",
	"teriyaki chicken", "frango teriyaki", "chicken teriyaki", "teriyaki",
	"ramen", "lamen", "missoshiru", "miso soup", "sopa de miso",
	"gyoza", "guioza", "tempura", "tempora",

	// Combinados e especiais.
	"combo família", "combo familia", "combo family",
	"combo salmão", "combo salmao", "combo salmon",
	"combo misto", "combo mix", "combo variado",
	"combo atum", "combo tuna",
	"combo executivo", "combo especial", "combo premium",
	"combinado", "combo", "rodízio", "festival",

	// Sashimi.
	"sashimi de salmão", "sashimi salmão", "sashimi salmao",
	"sashimi de atum", "sashimi atum", "sashimi tuna",
	"sashimi misto", "sashimi mix", "sashimi",

	// Gunkan e outros.
	"gunkan salmão", "gunkan atum", "gunkan ikura", "gunkan",
	"joe salmão", "joe atum", "joe",
	"skin salmão", "skin salmon", "skin",

	// Opções especiais.
	"vegetariano", "vegano", "vegan", "sem peixe", "sem carne",
	"sem glúten", "diet", "light", "fitness",
}

// ExtractDish scans the raw text for dish-name literals and returns the
// longest one found, preferring longer matches because they are more
// specific ("temaki salmão grelhado" must win over the bare "salmão").
// Returns "" when nothing matches.
func ExtractDish(text string) string {
	lower := strings.ToLower(text)

	best := ""
	bestLen := 0
	for _, dish := range dishCatalog {
		if !strings.Contains(lower, dish) {
			continue
		}
		if n := utf8.RuneCountInString(dish); n > bestLen {
			best = dish
			bestLen = n
		}
	}
	return best
}
