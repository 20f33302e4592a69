package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/paperforge/internal/paper"
)

func doc(path string, body ...string) *paper.Document {
	return &paper.Document{Path: path, Title: "Doc", BodyLines: body}
}

func TestDocuments_CleanSet_NoIssues(t *testing.T) {
	docs := []*paper.Document{
		doc("a.paper", "Unique text one.", "Stamp here."),
		doc("b.paper", "Unique text two.", "STAMP area."),
	}

	result := Documents(docs, Options{})
	require.Empty(t, result.Issues)
	require.Equal(t, 2, result.Documents)
	require.False(t, result.HasErrors())
}

func TestDocuments_DuplicateBodies_ReportedOnceAsWarning(t *testing.T) {
	docs := []*paper.Document{
		doc("b.paper", "Same form text.", "Stamp."),
		doc("a.paper", "Same form text.", "Stamp."),
		doc("c.paper", "Different.", "Stamp."),
	}

	result := Documents(docs, Options{})
	require.Len(t, result.Issues, 1)
	require.Equal(t, SeverityWarning, result.Issues[0].Severity)
	require.Equal(t, "duplicate body content across: a.paper, b.paper", result.Issues[0].Message)
	require.False(t, result.HasErrors())
}

func TestDocuments_DuplicateDetection_IgnoresInsignificantWhitespace(t *testing.T) {
	docs := []*paper.Document{
		doc("a.paper", "Same form text.", "", "Stamp."),
		doc("b.paper", "  Same form text.  ", "Stamp.", ""),
	}

	result := Documents(docs, Options{})
	require.Len(t, result.Issues, 1)
	require.Contains(t, result.Issues[0].Message, "duplicate body content")
}

func TestDocuments_FailOnDuplicates_EscalatesToError(t *testing.T) {
	docs := []*paper.Document{
		doc("a.paper", "Same.", "Stamp."),
		doc("b.paper", "Same.", "Stamp."),
	}

	result := Documents(docs, Options{FailOnDuplicates: true})
	require.True(t, result.HasErrors())
	require.Equal(t, SeverityError, result.Issues[0].Severity)
}

func TestDocuments_MissingStamp_SingleAggregateWarning(t *testing.T) {
	docs := []*paper.Document{
		doc("b.paper", "No marker here."),
		doc("a.paper", "Nothing either."),
		doc("c.paper", "Has a stamp line."),
	}

	result := Documents(docs, Options{})
	require.Len(t, result.Issues, 1)
	require.Equal(t, SeverityWarning, result.Issues[0].Severity)
	require.Equal(t, "missing possible stamp area: a.paper, b.paper", result.Issues[0].Message)
}

func TestDocuments_StrictStamps_EscalatesToError(t *testing.T) {
	docs := []*paper.Document{doc("a.paper", "No marker.")}

	result := Documents(docs, Options{StrictStamps: true})
	require.True(t, result.HasErrors())
}

func TestDocuments_EmptyBodies_NotTreatedAsDuplicates(t *testing.T) {
	docs := []*paper.Document{
		doc("a.paper", "", "Stamp."),
		doc("b.paper", "", "Stamp."),
	}

	result := Documents(docs, Options{})
	// Both bodies normalize to "Stamp." so they do collide; an entirely
	// blank pair must not.
	blank := []*paper.Document{
		doc("c.paper", "", ""),
		doc("d.paper", ""),
	}
	blankResult := Documents(blank, Options{})

	require.Len(t, result.Issues, 1)
	for _, issue := range blankResult.Issues {
		require.NotContains(t, issue.Message, "duplicate body content")
	}
}

func TestSeverity_String(t *testing.T) {
	require.Equal(t, "warning", SeverityWarning.String())
	require.Equal(t, "error", SeverityError.String())
}
