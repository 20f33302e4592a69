package lathe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/paperforge/internal/category"
	"git.home.luguber.info/inful/paperforge/internal/paper"
)

func testDoc(categoryLabel, slug, title string) *paper.Document {
	doc := &paper.Document{
		Slug:    slug,
		SlugKey: paper.NormalizeComponent(slug),
		Title:   title,
	}
	if categoryLabel != "" {
		doc.Categories = []string{categoryLabel}
		doc.CategoryKeys = []string{paper.NormalizeComponent(categoryLabel)}
	}
	return doc
}

func TestEntityID_DerivesFromLocalizationKey(t *testing.T) {
	doc := testDoc("Identity", "id-replacement", "ID Replacement")
	require.Equal(t, "PrintedDocumentIdentityIdReplacement", EntityID(doc))
}

func TestEntityID_UncategorizedDocument_UsesSlugOnly(t *testing.T) {
	doc := testDoc("", "incident-report", "Incident Report")
	require.Equal(t, "PrintedDocumentIncidentReport", EntityID(doc))
}

func TestRecipeID_AppendsRecipeSuffix(t *testing.T) {
	require.Equal(t, "PrintedDocumentIdentityIdReplacementRecipe",
		RecipeID("PrintedDocumentIdentityIdReplacement"))
}

func TestPrototypes_RendersEntitiesGroupedByCategory(t *testing.T) {
	docs := []*paper.Document{
		testDoc("Identity", "id-replacement", "ID Replacement"),
		testDoc("Security", "incident", "Incident Report"),
	}
	infos := category.BuildInfos(docs, nil)

	got := Prototypes(docs, infos, true)
	require.Contains(t, got, "# Identity\n")
	require.Contains(t, got, "# Security\n")
	require.Contains(t, got, "  id: PrintedDocumentIdentityIdReplacement\n")
	require.Contains(t, got, "  name: ID Replacement\n")
	require.Contains(t, got, "  categories: [ HideSpawnMenu ]\n")
	require.Contains(t, got, "      content: doc-text-printer-identity-id-replacement\n")
	require.True(t, strings.HasSuffix(got, "\n"))
	require.False(t, strings.HasSuffix(got, "\n\n"))
}

func TestPrototypes_SpawnMenuVisible_OmitsHideCategory(t *testing.T) {
	docs := []*paper.Document{testDoc("Identity", "id-replacement", "ID Replacement")}
	infos := category.BuildInfos(docs, nil)

	got := Prototypes(docs, infos, false)
	require.NotContains(t, got, "HideSpawnMenu")
}

func TestPrototypes_SortsDocumentsByTitleWithinCategory(t *testing.T) {
	docs := []*paper.Document{
		testDoc("Identity", "passport", "Zeta Passport"),
		testDoc("Identity", "badge", "Access Badge"),
	}
	infos := category.BuildInfos(docs, nil)

	got := Prototypes(docs, infos, false)
	require.Less(t,
		strings.Index(got, "Access Badge"),
		strings.Index(got, "Zeta Passport"))
}

func TestRecipes_RendersRecipeFieldsAndMaterialOrder(t *testing.T) {
	docs := []*paper.Document{testDoc("Identity", "id-replacement", "ID Replacement")}
	infos := category.BuildInfos(docs, nil)

	got := Recipes(docs, infos, RecipeOptions{
		CompleteTime: 4,
		Materials: []Material{
			{Name: "SheetPrinter", Amount: 100},
			{Name: "Ink", Amount: 50},
		},
		ApplyMaterialDiscount: true,
	})

	require.Contains(t, got, "- type: latheRecipe\n")
	require.Contains(t, got, "  id: PrintedDocumentIdentityIdReplacementRecipe\n")
	require.Contains(t, got, "  result: PrintedDocumentIdentityIdReplacement\n")
	require.Contains(t, got, "    - Identity\n")
	require.Contains(t, got, "  completetime: 4\n")
	require.Contains(t, got, "  applyMaterialDiscount: true\n")
	require.Less(t,
		strings.Index(got, "    SheetPrinter: 100"),
		strings.Index(got, "    Ink: 50"))
}

func TestRecipes_CategoryIDOverride_ReplacesAllocatedID(t *testing.T) {
	docs := []*paper.Document{testDoc("Identity", "id-replacement", "ID Replacement")}
	infos := category.BuildInfos(docs, nil)

	got := Recipes(docs, infos, RecipeOptions{
		CategoryIDs:  map[string]string{"Identity": "Paperwork"},
		CompleteTime: 2,
		Materials:    DefaultMaterials(),
	})
	require.Contains(t, got, "    - Paperwork\n")
	require.NotContains(t, got, "    - Identity\n")
}

func TestRecipePack_ListsEveryRecipeUnderPackID(t *testing.T) {
	docs := []*paper.Document{
		testDoc("Identity", "id-replacement", "ID Replacement"),
		testDoc("Security", "incident", "Incident Report"),
	}
	infos := category.BuildInfos(docs, nil)

	got := RecipePack(docs, infos, "StarlightDocsAuto")
	require.Contains(t, got, "- type: latheRecipePack\n")
	require.Contains(t, got, "  id: StarlightDocsAuto\n")
	require.Contains(t, got, "  - PrintedDocumentIdentityIdReplacementRecipe\n")
	require.Contains(t, got, "  - PrintedDocumentSecurityIncidentRecipe\n")
}

func TestCategoryCatalog_OneEntryPerCategory(t *testing.T) {
	docs := []*paper.Document{
		testDoc("Identity", "id-replacement", "ID Replacement"),
		testDoc("Security", "incident", "Incident Report"),
	}
	infos := category.BuildInfos(docs, nil)

	want := strings.Join([]string{
		"# Auto-generated by paperforge. Do not edit manually.",
		"lathe-category-identity = Identity",
		"lathe-category-security = Security",
		"",
	}, "\n")
	require.Equal(t, want, CategoryCatalog(infos))
}

func TestCategoryPrototypes_OneBlockPerCategory(t *testing.T) {
	docs := []*paper.Document{testDoc("Identity", "id-replacement", "ID Replacement")}
	infos := category.BuildInfos(docs, nil)

	want := strings.Join([]string{
		"# Auto-generated by paperforge. Do not edit manually.",
		"",
		"- type: latheCategory",
		"  id: Identity",
		"  name: lathe-category-identity",
		"",
	}, "\n")
	require.Equal(t, want, CategoryPrototypes(infos))
}

func TestDefaultMaterials_SheetPrinterOnly(t *testing.T) {
	materials := DefaultMaterials()
	require.Equal(t, []Material{{Name: "SheetPrinter", Amount: 100}}, materials)
}
