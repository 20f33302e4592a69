// Package render produces the localization catalog and the document metadata
// index from the parsed document set.
package render

import (
	"slices"
	"sort"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/paper"
)

// GeneratedHeader is the first line of every generated artifact.
const GeneratedHeader = "# Auto-generated by paperforge. Do not edit manually."

// PrefixMarker is a zero-width space prefixed to body lines that start with a
// bracket, which the localization format would otherwise read as a select
// variant line.
const PrefixMarker = "\u200b"

// Catalog renders the localization catalog: per-category blocks of
// `<key> =` entries carrying the document body.
func Catalog(documents []*paper.Document) string {
	docs := sortedByCategoryAndSlug(documents)

	lines := []string{GeneratedHeader}
	var currentCategory []string
	started := false
	for _, doc := range docs {
		if !started || !slices.Equal(currentCategory, doc.Categories) {
			lines = append(lines, "", "# "+doc.CategoryLabel())
			currentCategory = doc.Categories
			started = true
		}

		lines = append(lines,
			"",
			"# title: "+doc.Title,
			"# slug: "+doc.Slug,
			doc.Key()+" =",
		)

		body := slices.Clone(doc.BodyLines)
		for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
			body = body[:len(body)-1]
		}
		for _, raw := range body {
			line := raw
			if strings.HasPrefix(line, "[") {
				line = PrefixMarker + line
			}
			lines = append(lines, "    "+line)
		}
		// Trailing zero-width lines give the rendered page vertical spacing.
		lines = append(lines, "    "+PrefixMarker, "    "+PrefixMarker)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// DocumentsMetadata renders the metadata index: one key/name record per
// document plus the PascalCase primary category when present.
func DocumentsMetadata(documents []*paper.Document) string {
	docs := sortedByCategoryAndSlug(documents)

	lines := []string{GeneratedHeader, "documents:"}
	for _, doc := range docs {
		lines = append(lines,
			"  - key: "+quote(doc.Key()),
			"    name: "+quote(doc.Title),
		)
		if len(doc.Categories) == 0 {
			continue
		}
		primary := doc.Categories[0]
		primaryKey := paper.NormalizeComponent(primary)
		primaryID := paper.ToPascalCase(primaryKey)
		if primaryID == "" {
			primaryID = paper.ToPascalCase(primary)
		}
		value := primaryID
		if value == "" {
			value = primary
		}
		lines = append(lines, "    categories:", "      - "+quote(value))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func sortedByCategoryAndSlug(documents []*paper.Document) []*paper.Document {
	docs := slices.Clone(documents)
	sort.SliceStable(docs, func(i, j int) bool {
		if c := slices.Compare(docs[i].Categories, docs[j].Categories); c != 0 {
			return c < 0
		}
		return docs[i].Slug < docs[j].Slug
	})
	return docs
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
