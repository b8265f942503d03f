package chat

import (
	"encoding/json"
	"fmt"
	"os"

	"sushichat/models"
)

// LoadCatalog reads and validates the intent catalog. A missing or
// malformed document is a startup error; the caller is expected to treat
// it as fatal.
func LoadCatalog(path string) (*models.IntentCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent catalog %s: %w", path, err)
	}

	var catalog models.IntentCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse intent catalog %s: %w", path, err)
	}

	if len(catalog.Intents) == 0 {
		return nil, fmt.Errorf("intent catalog %s is empty", path)
	}
	seen := make(map[string]bool, len(catalog.Intents))
	for _, intent := range catalog.Intents {
		if intent.Tag == "" {
			return nil, fmt.Errorf("intent catalog %s: intent with empty tag", path)
		}
		if seen[intent.Tag] {
			return nil, fmt.Errorf("intent catalog %s: duplicate tag %q", path, intent.Tag)
		}
		seen[intent.Tag] = true
		if len(intent.Responses) == 0 {
			return nil, fmt.Errorf("intent catalog %s: intent %q has no responses", path, intent.Tag)
		}
	}
	return &catalog, nil
}
