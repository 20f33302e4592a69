// Package verify re-parses every generated artifact and checks that all
// cross-references between them resolve. Content mismatches are findings, not
// errors: every check runs and every violation is reported in one pass.
package verify

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/paper"
	"git.home.luguber.info/inful/paperforge/internal/util/sets"
)

const categoryKeyPrefix = "lathe-category-"

// Bundle names the seven generated artifacts of one generation run.
type Bundle struct {
	DocumentsPath          string
	CatalogPath            string
	PrototypesPath         string
	RecipesPath            string
	PackPath               string
	CategoryPrototypesPath string
	CategoryCatalogPath    string
}

// Verify returns every consistency violation found across the bundle. The
// returned error is reserved for structurally malformed input (unreadable file,
// wrong top-level shape); an inconsistent but well-formed bundle yields
// findings and a nil error.
func (b Bundle) Verify() ([]string, error) {
	docs, docCategoryIDs, err := readMetadata(b.DocumentsPath)
	if err != nil {
		return nil, err
	}
	catalogKeys, err := readCatalogKeys(b.CatalogPath, paper.KeyPrefix)
	if err != nil {
		return nil, err
	}
	prototypes, err := readEntries(b.PrototypesPath)
	if err != nil {
		return nil, err
	}
	recipes, err := readEntries(b.RecipesPath)
	if err != nil {
		return nil, err
	}
	packs, err := readEntries(b.PackPath)
	if err != nil {
		return nil, err
	}
	categoryPrototypes, err := readEntries(b.CategoryPrototypesPath)
	if err != nil {
		return nil, err
	}
	categoryKeys, err := readCatalogKeys(b.CategoryCatalogPath, categoryKeyPrefix)
	if err != nil {
		return nil, err
	}

	var findings []string
	if len(docs) == 0 {
		findings = append(findings, fmt.Sprintf("no documents found in %s", b.DocumentsPath))
	}

	docKeys := sets.New[string]()
	for key := range docs {
		docKeys.Add(key)
	}

	findings = append(findings, checkCatalogCoverage(docKeys, catalogKeys, b.CatalogPath)...)

	entityIDs, entityFindings := collectEntities(prototypes, docKeys, b.PrototypesPath)
	findings = append(findings, entityFindings...)

	recipeIDs, recipeCategoryIDs, recipeFindings := collectRecipes(recipes, entityIDs, b.RecipesPath)
	findings = append(findings, recipeFindings...)

	findings = append(findings, checkPack(packs, recipeIDs)...)

	categoryNames, categoryFindings := collectCategories(categoryPrototypes, b.CategoryPrototypesPath)
	findings = append(findings, categoryFindings...)

	findings = append(findings, checkDocumentCategories(docCategoryIDs, categoryNames, b.DocumentsPath)...)
	findings = append(findings, checkRecipeCategories(recipeCategoryIDs, categoryNames)...)
	findings = append(findings, checkCategoryCatalog(categoryNames, categoryKeys, b.CategoryCatalogPath)...)
	findings = append(findings, checkCategoryUsage(categoryNames, docCategoryIDs, recipeCategoryIDs)...)

	return findings, nil
}

// checkCatalogCoverage verifies every document key has a catalog entry.
func checkCatalogCoverage(docKeys, catalogKeys sets.Set[string], catalogPath string) []string {
	var missing []string
	for key := range docKeys {
		if !catalogKeys.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return []string{fmt.Sprintf("%s missing entries for: %s", catalogPath, strings.Join(missing, ", "))}
}

// collectEntities verifies entity id uniqueness and content resolution,
// returning the set of known entity ids.
func collectEntities(prototypes []entry, docKeys sets.Set[string], path string) (sets.Set[string], []string) {
	ids := sets.New[string]()
	var findings []string
	for _, proto := range prototypes {
		if proto.Type != "entity" {
			continue
		}
		if proto.ID == "" {
			findings = append(findings, fmt.Sprintf("entity entry missing id in %s", path))
			continue
		}
		if ids.Has(proto.ID) {
			findings = append(findings, fmt.Sprintf("duplicate entity id %s in %s", proto.ID, path))
			continue
		}
		ids.Add(proto.ID)

		var paperComponent *component
		for i := range proto.Components {
			if proto.Components[i].Type == "Paper" {
				paperComponent = &proto.Components[i]
				break
			}
		}
		if paperComponent == nil {
			findings = append(findings, fmt.Sprintf("%s missing Paper component in %s", proto.ID, path))
			continue
		}
		if !docKeys.Has(paperComponent.Content) {
			findings = append(findings,
				fmt.Sprintf("%s references unknown paperwork key %q", proto.ID, paperComponent.Content))
		}
	}
	return ids, findings
}

// collectRecipes verifies recipe id uniqueness and result resolution, returning
// the known recipe ids and every category id recipes reference.
func collectRecipes(recipes []entry, entityIDs sets.Set[string], path string) (sets.Set[string], sets.Set[string], []string) {
	ids := sets.New[string]()
	categoryIDs := sets.New[string]()
	var findings []string
	for _, recipe := range recipes {
		if recipe.Type != "latheRecipe" {
			continue
		}
		if recipe.ID == "" {
			findings = append(findings, fmt.Sprintf("recipe entry missing id in %s", path))
			continue
		}
		if ids.Has(recipe.ID) {
			findings = append(findings, fmt.Sprintf("duplicate recipe id %s in %s", recipe.ID, path))
			continue
		}
		ids.Add(recipe.ID)

		if !entityIDs.Has(recipe.Result) {
			findings = append(findings, fmt.Sprintf("%s references unknown entity %q", recipe.ID, recipe.Result))
		}
		for _, id := range recipe.Categories {
			categoryIDs.Add(id)
		}
	}
	return ids, categoryIDs, findings
}

// checkPack verifies every pack entry's recipes resolve.
func checkPack(packs []entry, recipeIDs sets.Set[string]) []string {
	var findings []string
	for _, pack := range packs {
		if pack.Type != "latheRecipePack" {
			continue
		}
		for _, id := range pack.Recipes {
			if !recipeIDs.Has(id) {
				findings = append(findings,
					fmt.Sprintf("recipe pack %s references unknown recipe %q", pack.ID, id))
			}
		}
	}
	return findings
}

// collectCategories verifies category prototype id uniqueness and returns the
// id → localization name mapping.
func collectCategories(prototypes []entry, path string) (map[string]string, []string) {
	names := make(map[string]string)
	var findings []string
	for _, proto := range prototypes {
		if proto.Type != "latheCategory" {
			continue
		}
		if proto.ID == "" {
			findings = append(findings, fmt.Sprintf("latheCategory entry missing id in %s", path))
			continue
		}
		if _, dup := names[proto.ID]; dup {
			findings = append(findings, fmt.Sprintf("duplicate latheCategory id %s", proto.ID))
			continue
		}
		if proto.Name == "" {
			findings = append(findings, fmt.Sprintf("latheCategory %s missing name in %s", proto.ID, path))
			continue
		}
		names[proto.ID] = proto.Name
	}
	return names, findings
}

// checkDocumentCategories verifies categories referenced by documents resolve.
func checkDocumentCategories(docCategoryIDs sets.Set[string], categoryNames map[string]string, documentsPath string) []string {
	var missing []string
	for id := range docCategoryIDs {
		if _, ok := categoryNames[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return []string{fmt.Sprintf("%s references undefined lathe categories: %s",
		documentsPath, strings.Join(missing, ", "))}
}

// checkRecipeCategories verifies categories referenced by recipes resolve.
func checkRecipeCategories(recipeCategoryIDs sets.Set[string], categoryNames map[string]string) []string {
	var missing []string
	for id := range recipeCategoryIDs {
		if _, ok := categoryNames[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return []string{fmt.Sprintf("lathe recipes reference undefined categories: %s", strings.Join(missing, ", "))}
}

// checkCategoryCatalog verifies the bidirectional closure between category
// prototype names and the category localization file: unused definitions are
// flagged, not silently ignored.
func checkCategoryCatalog(categoryNames map[string]string, catalogKeys sets.Set[string], catalogPath string) []string {
	var findings []string

	var missing []string
	referenced := sets.New[string]()
	for _, name := range categoryNames {
		referenced.Add(name)
		if !catalogKeys.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		findings = append(findings, fmt.Sprintf("%s missing definitions for: %s",
			catalogPath, strings.Join(missing, ", ")))
	}

	var unused []string
	for key := range catalogKeys {
		if !referenced.Has(key) {
			unused = append(unused, key)
		}
	}
	if len(unused) > 0 {
		sort.Strings(unused)
		findings = append(findings, fmt.Sprintf("%s defines unused categories: %s",
			catalogPath, strings.Join(unused, ", ")))
	}
	return findings
}

// checkCategoryUsage flags categories no document or recipe references, and
// categories no recipe exercises.
func checkCategoryUsage(categoryNames map[string]string, docCategoryIDs, recipeCategoryIDs sets.Set[string]) []string {
	var findings []string

	var orphaned []string
	for id := range categoryNames {
		if !docCategoryIDs.Has(id) && !recipeCategoryIDs.Has(id) {
			orphaned = append(orphaned, id)
		}
	}
	sort.Strings(orphaned)
	for _, id := range orphaned {
		findings = append(findings, fmt.Sprintf("latheCategory %q is not referenced by documents or recipes", id))
	}

	var unexercised []string
	for id := range categoryNames {
		if !recipeCategoryIDs.Has(id) {
			unexercised = append(unexercised, id)
		}
	}
	if len(unexercised) > 0 {
		sort.Strings(unexercised)
		findings = append(findings, fmt.Sprintf("no recipes reference categories: %s", strings.Join(unexercised, ", ")))
	}
	return findings
}
