// File: sushichat/services/recipe/interface.go
package recipe

import "context"

// Service resolves a dish name to its ingredients/recipe text. Lookup never
// fails: transport errors, bad credentials and empty model output all come
// back as a human-readable notice, which the chat engine embeds in that
// dish's reply section.
type Service interface {
	Lookup(ctx context.Context, dishName, apiKey string) string
}
