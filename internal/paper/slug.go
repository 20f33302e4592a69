package paper

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	parentheticalRE = regexp.MustCompile(`\s*\([^()]*\)`)
	whitespaceRE    = regexp.MustCompile(`\s+`)
	ordinalPrefixRE = regexp.MustCompile(`^\d+\s*[-.)]?\s*`)
	nonSlugRE       = regexp.MustCompile(`[^a-z0-9-]+`)
	digitRunRE      = regexp.MustCompile(`\d+`)
	hyphenRunRE     = regexp.MustCompile(`-+`)
	wordSplitRE     = regexp.MustCompile(`[^0-9a-zA-Z]+`)
)

// StripParenthetical removes parenthetical segments and collapses the
// surrounding whitespace.
func StripParenthetical(text string) string {
	withoutParens := parentheticalRE.ReplaceAllString(text, "")
	collapsed := whitespaceRE.ReplaceAllString(withoutParens, " ")
	return strings.TrimSpace(collapsed)
}

// NormalizeComponent produces an identifier-safe slug component: lowercase,
// hyphenated, digit runs removed.
func NormalizeComponent(component string) string {
	cleaned := StripParenthetical(component)
	cleaned = strings.ReplaceAll(strings.ToLower(cleaned), " ", "-")
	cleaned = nonSlugRE.ReplaceAllString(cleaned, "-")
	cleaned = digitRunRE.ReplaceAllString(cleaned, "")
	cleaned = hyphenRunRE.ReplaceAllString(cleaned, "-")
	return strings.Trim(cleaned, "-")
}

// CleanCategoryLabel returns a human-readable category label without
// parenthetical notes or a leading ordinal prefix (used for manual folder
// ordering). Falls back to the pre-strip text when stripping empties the label.
func CleanCategoryLabel(component string) string {
	cleaned := StripParenthetical(component)
	withoutPrefix := strings.TrimSpace(ordinalPrefixRE.ReplaceAllString(cleaned, ""))
	if withoutPrefix == "" {
		return cleaned
	}
	return withoutPrefix
}

// ToPascalCase converts a string into concatenated PascalCase segments,
// dropping digits entirely.
func ToPascalCase(value string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, part := range wordSplitRE.Split(value, -1) {
		stripped := digitRunRE.ReplaceAllString(part, "")
		if stripped == "" {
			continue
		}
		b.WriteString(caser.String(stripped))
	}
	return b.String()
}
