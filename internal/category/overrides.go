package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidOverrides indicates the override file is malformed. This is a
// configuration error, distinct from document parse errors.
var ErrInvalidOverrides = errors.New("invalid category overrides")

// Override adjusts how one primary category is rendered. All fields are
// optional and independently applied; absent fields derive from the primary
// category label.
type Override struct {
	DisplayLabel string `json:"display_label"`
	SlugBase     string `json:"slug_base"`
	IDBase       string `json:"id_base"`
	Comment      string `json:"comment"`
	Order        *int   `json:"order"`
}

// LoadOverrides reads an optional JSON override file keyed by primary category
// label. An empty path yields no overrides.
func LoadOverrides(path string) (map[string]Override, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOverrides, path, err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s must hold a JSON object: %w", ErrInvalidOverrides, path, err)
	}

	overrides := make(map[string]Override, len(entries))
	for label, entry := range entries {
		var override Override
		if err := json.Unmarshal(entry, &override); err != nil {
			return nil, fmt.Errorf("%w: override for %q must be an object: %w",
				ErrInvalidOverrides, label, err)
		}
		overrides[label] = override
	}
	return overrides, nil
}
