package paper

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	perrors "git.home.luguber.info/inful/paperforge/internal/paper/errors"
)

func writePaper(t *testing.T, root, rel, title, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# "+title+"\n"+body), 0o644))
}

func TestDiscover_ReturnsEligibleFilesSortedByPath(t *testing.T) {
	root := t.TempDir()
	writePaper(t, root, "Security/incident.paper", "Incident Report", "[body]\n")
	writePaper(t, root, "Identity/id-replacement.paper", "ID Replacement", "[body]\n")
	writePaper(t, root, "notes.txt", "Loose Note", "stamp here\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("# skip"), 0o644))

	docs, err := NewDiscovery(root).Discover()
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, "Identity/id-replacement.paper", docs[0].Path)
	require.Equal(t, "Security/incident.paper", docs[1].Path)
	require.Equal(t, "notes.txt", docs[2].Path)

	for _, doc := range docs {
		require.NotEmpty(t, doc.Title)
		require.NotEmpty(t, doc.SlugKey)
	}
}

func TestDiscover_SkipsInternalMarkerSegments(t *testing.T) {
	root := t.TempDir()
	writePaper(t, root, "Forms/request.paper", "Request", "[body]\n")
	writePaper(t, root, "_fragments/header.paper", "Header", "[body]\n")
	writePaper(t, root, "Forms/_draft.paper", "Draft", "[body]\n")

	docs, err := NewDiscovery(root).Discover()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Forms/request.paper", docs[0].Path)
}

func TestDiscover_OnlyInternalFiles_FailsWithFormatError(t *testing.T) {
	root := t.TempDir()
	writePaper(t, root, "_fragments/header.paper", "Header", "[body]\n")

	_, err := NewDiscovery(root).Discover()
	require.Error(t, err)
	require.True(t, errors.Is(err, perrors.ErrNoDocuments))
	require.True(t, errors.Is(err, perrors.ErrDocumentFormat))
}

func TestDiscover_DistinctCategoryPaths_YieldDistinctKeys(t *testing.T) {
	root := t.TempDir()
	writePaper(t, root, "identity/id-replacement.paper", "ID Replacement", "[body]\n")
	writePaper(t, root, "medical/id-replacement.paper", "ID Replacement", "[body]\n")

	docs, err := NewDiscovery(root).Discover()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "doc-text-printer-identity-id-replacement", docs[0].Key())
	require.Equal(t, "doc-text-printer-medical-id-replacement", docs[1].Key())
}

func TestDiscover_CollidingKeys_FailsWithFormatError(t *testing.T) {
	root := t.TempDir()
	// Extension variants of the same stem derive the same localization key.
	writePaper(t, root, "Forms/request.paper", "Request", "[body]\n")
	writePaper(t, root, "Forms/request.txt", "Request Copy", "[body]\n")

	_, err := NewDiscovery(root).Discover()
	require.Error(t, err)
	require.True(t, errors.Is(err, perrors.ErrDocumentFormat))
	require.Contains(t, err.Error(), "doc-text-printer-forms-request")
}

func TestParseDocument_EmptyContent_FailsWithFormatError(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "blank.paper")
	require.NoError(t, os.WriteFile(path, []byte("  \n \n"), 0o644))

	_, err := ParseDocument(path, root)
	require.True(t, errors.Is(err, perrors.ErrDocumentFormat))
}

func TestParseDocument_MissingTitleMarker_FailsWithFormatError(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "untitled.paper")
	require.NoError(t, os.WriteFile(path, []byte("no marker here\nbody\n"), 0o644))

	_, err := ParseDocument(path, root)
	require.True(t, errors.Is(err, perrors.ErrDocumentFormat))
}

func TestParseDocument_BlankTitle_FailsWithFormatError(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "blank-title.paper")
	require.NoError(t, os.WriteFile(path, []byte("#   \nbody\n"), 0o644))

	_, err := ParseDocument(path, root)
	require.True(t, errors.Is(err, perrors.ErrDocumentFormat))
}

func TestParseDocument_MissingFile_FailsWithIOError(t *testing.T) {
	root := t.TempDir()
	_, err := ParseDocument(filepath.Join(root, "absent.paper"), root)
	require.True(t, errors.Is(err, perrors.ErrDocumentIO))
}

func TestParseDocument_CleansCategoriesAndDerivesKeys(t *testing.T) {
	root := t.TempDir()
	writePaper(t, root, "04 Engineering & Logistics (Engineering, Cargo, Janitorial)/permit.paper",
		"Work Permit", "line one\n\n")

	doc, err := ParseDocument(
		filepath.Join(root, "04 Engineering & Logistics (Engineering, Cargo, Janitorial)", "permit.paper"), root)
	require.NoError(t, err)
	require.Equal(t, []string{"Engineering & Logistics"}, doc.Categories)
	require.Equal(t, []string{"engineering-logistics"}, doc.CategoryKeys)
	require.Equal(t, "Work Permit", doc.Title)
	require.Equal(t, "permit", doc.SlugKey)
	require.Equal(t, "doc-text-printer-engineering-logistics-permit", doc.Key())
	require.Equal(t, []string{"line one", "", ""}, doc.BodyLines)
}

func TestParseDocument_CRLFContent_NormalizedBeforeSplitting(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "crlf.paper")
	require.NoError(t, os.WriteFile(path, []byte("# Title\r\nbody line\r\n"), 0o644))

	doc, err := ParseDocument(path, root)
	require.NoError(t, err)
	require.Equal(t, "Title", doc.Title)
	require.Equal(t, []string{"body line", ""}, doc.BodyLines)
}

func TestDocument_NumericSlug_FallsBackToPlaceholder(t *testing.T) {
	root := t.TempDir()
	writePaper(t, root, "1234.paper", "Numbered", "[body]\n")

	docs, err := NewDiscovery(root).Discover()
	require.NoError(t, err)
	require.Equal(t, "document", docs[0].SlugKey)
	require.Equal(t, "doc-text-printer-document", docs[0].Key())
	require.Equal(t, "uncategorized", docs[0].CategoryLabel())
	require.Equal(t, MiscellaneousCategory, docs[0].PrimaryCategory())
}
