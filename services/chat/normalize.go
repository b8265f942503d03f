package chat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonWordRe matches everything that is not a letter, digit, underscore or
// whitespace. Unicode-aware so accented Portuguese characters survive.
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// stopWords is the Portuguese stop-word list plus a handful of common
// English function words, since customers occasionally mix languages.
var stopWords = buildStopWords()

func buildStopWords() map[string]bool {
	words := []string{
		// Portuguese.
		"de", "a", "o", "que", "e", "é", "do", "da", "em", "um", "para",
		"com", "não", "uma", "os", "no", "se", "na", "por", "mais", "as",
		"dos", "como", "mas", "ao", "ele", "das", "à", "seu", "sua", "ou",
		"quando", "muito", "nos", "já", "eu", "também", "só", "pelo",
		"pela", "até", "isso", "ela", "entre", "depois", "sem", "mesmo",
		"aos", "seus", "quem", "nas", "me", "esse", "eles", "você", "essa",
		"num", "nem", "suas", "meu", "às", "minha", "numa", "pelos",
		"elas", "qual", "nós", "lhe", "deles", "essas", "esses", "pelas",
		"este", "dele", "tu", "te", "vocês", "vos", "lhes", "meus",
		"minhas", "teu", "tua", "teus", "tuas", "nosso", "nossa",
		"nossos", "nossas", "dela", "delas", "esta", "estes", "estas",
		"aquele", "aquela", "aqueles", "aquelas", "isto", "aquilo",
		"estou", "está", "estamos", "estão", "estive", "esteve",
		"estivemos", "estiveram", "estava", "estávamos", "estavam",
		"hei", "há", "havemos", "hão", "houve", "haja", "sou", "somos",
		"são", "era", "éramos", "eram", "fui", "foi", "fomos", "foram",
		"seja", "sejam", "fosse", "fossem", "for", "forem", "será",
		"serão", "seria", "seriam", "tenho", "tem", "temos", "têm",
		"tinha", "tinham", "tive", "teve", "tivemos", "tiveram", "tenha",
		"tenham", "tiver", "terá", "terão", "teria", "teriam",
		// English.
		"the", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Normalize lowercases the text, strips punctuation, tokenizes on
// whitespace and drops stop-words and tokens of two runes or fewer.
// Empty input yields an empty slice.
func Normalize(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), "")
	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if stopWords[word] || utf8.RuneCountInString(word) <= 2 {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
