package lathe

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/category"
	"git.home.luguber.info/inful/paperforge/internal/paper"
	"git.home.luguber.info/inful/paperforge/internal/render"
)

// Material is one lathe material requirement. Kept as a slice element rather
// than a map entry so rendered order follows flag order.
type Material struct {
	Name   string
	Amount int
}

// DefaultMaterials returns the material set used when none are configured.
func DefaultMaterials() []Material {
	return []Material{{Name: "SheetPrinter", Amount: 100}}
}

// RecipeOptions configure recipe rendering.
type RecipeOptions struct {
	// CategoryIDs overrides the lathe category id referenced by recipes for a
	// raw primary category label.
	CategoryIDs           map[string]string
	CompleteTime          int
	Materials             []Material
	ApplyMaterialDiscount bool
}

// Prototypes renders the entity prototypes grouped by category.
func Prototypes(documents []*paper.Document, categories []category.Info, hideSpawnMenu bool) string {
	grouped := byCategory(documents)

	lines := []string{render.GeneratedHeader}
	for _, info := range categories {
		docs := grouped[info.RawLabel]
		if len(docs) == 0 {
			continue
		}

		lines = append(lines, "", "# "+info.Comment, "")
		for _, doc := range sortedByTitle(docs) {
			lines = append(lines,
				"- type: entity",
				"  parent: PrintedDocument",
				"  id: "+EntityID(doc),
				"  name: "+doc.Title,
			)
			if hideSpawnMenu {
				lines = append(lines, "  categories: [ HideSpawnMenu ]")
			}
			lines = append(lines,
				"  components:",
				"    - type: Paper",
				"      content: "+doc.Key(),
				"",
			)
		}
	}
	return trimmed(lines)
}

// Recipes renders one lathe recipe per document, grouped by category.
func Recipes(documents []*paper.Document, categories []category.Info, opts RecipeOptions) string {
	grouped := byCategory(documents)

	lines := []string{render.GeneratedHeader}
	for _, info := range categories {
		docs := grouped[info.RawLabel]
		if len(docs) == 0 {
			continue
		}

		lines = append(lines, "", "# "+info.Comment, "")

		categoryID := info.ID
		if override, ok := opts.CategoryIDs[info.RawLabel]; ok {
			categoryID = override
		}

		for _, doc := range sortedByTitle(docs) {
			entityID := EntityID(doc)
			lines = append(lines,
				"- type: latheRecipe",
				"  id: "+RecipeID(entityID),
				"  result: "+entityID,
				"  categories:",
				"    - "+categoryID,
				fmt.Sprintf("  completetime: %d", opts.CompleteTime),
				fmt.Sprintf("  applyMaterialDiscount: %t", opts.ApplyMaterialDiscount),
				"  materials:",
			)
			for _, material := range opts.Materials {
				lines = append(lines, fmt.Sprintf("    %s: %d", material.Name, material.Amount))
			}
			lines = append(lines, "")
		}
	}
	return trimmed(lines)
}

// RecipePack renders the pack block wiring every generated recipe together.
func RecipePack(documents []*paper.Document, categories []category.Info, packID string) string {
	grouped := byCategory(documents)

	lines := []string{
		render.GeneratedHeader,
		"- type: latheRecipePack",
		"  id: " + packID,
		"  recipes:",
	}
	for _, info := range categories {
		docs := grouped[info.RawLabel]
		if len(docs) == 0 {
			continue
		}
		lines = append(lines, "  # "+info.Comment)
		for _, doc := range sortedByTitle(docs) {
			lines = append(lines, "  - "+RecipeID(EntityID(doc)))
		}
		lines = append(lines, "")
	}
	return trimmed(lines)
}

// CategoryCatalog renders the category localization entries.
func CategoryCatalog(categories []category.Info) string {
	lines := []string{render.GeneratedHeader}
	for _, info := range categories {
		lines = append(lines, info.LocalizationKey()+" = "+info.DisplayLabel)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// CategoryPrototypes renders the latheCategory prototype entries.
func CategoryPrototypes(categories []category.Info) string {
	lines := []string{render.GeneratedHeader}
	for _, info := range categories {
		lines = append(lines,
			"",
			"- type: latheCategory",
			"  id: "+info.ID,
			"  name: "+info.LocalizationKey(),
		)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func byCategory(documents []*paper.Document) map[string][]*paper.Document {
	grouped := make(map[string][]*paper.Document)
	for _, doc := range documents {
		label := doc.PrimaryCategory()
		grouped[label] = append(grouped[label], doc)
	}
	return grouped
}

func sortedByTitle(documents []*paper.Document) []*paper.Document {
	docs := slices.Clone(documents)
	sort.SliceStable(docs, func(i, j int) bool {
		return strings.ToLower(docs[i].Title) < strings.ToLower(docs[j].Title)
	})
	return docs
}

func trimmed(lines []string) string {
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}
