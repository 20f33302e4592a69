// Package lathe renders the game-content artifacts: printed-document entity
// prototypes, lathe recipes, the recipe pack and category definitions.
package lathe

import (
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/paper"
)

const (
	entityPrefix = "PrintedDocument"
	recipeSuffix = "Recipe"
)

// EntityID derives the printed-document entity id for a document: the
// localization key minus its fixed prefix and digit-only components,
// PascalCased under the PrintedDocument type prefix.
func EntityID(doc *paper.Document) string {
	key := strings.TrimPrefix(doc.Key(), paper.KeyPrefix)

	var kept []string
	for _, part := range strings.Split(key, "-") {
		if part == "" || isDigits(part) {
			continue
		}
		kept = append(kept, part)
	}
	filtered := key
	if len(kept) > 0 {
		filtered = strings.Join(kept, "-")
	}
	return entityPrefix + paper.ToPascalCase(filtered)
}

// RecipeID derives the lathe recipe id for an entity id.
func RecipeID(entityID string) string {
	return entityID + recipeSuffix
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
