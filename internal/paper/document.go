// Package paper implements the paperwork document model: discovery, parsing,
// label cleaning and stable key derivation for everything downstream.
package paper

import "strings"

// KeyPrefix is the fixed prefix of every document localization key.
const KeyPrefix = "doc-text-printer-"

// MiscellaneousCategory groups documents that sit directly under the docs root.
const MiscellaneousCategory = "Miscellaneous"

// Document is one parsed paperwork source file. Immutable after parse.
type Document struct {
	Path         string   // slash-separated path relative to the docs root
	Categories   []string // cleaned labels, one per directory between root and file
	CategoryKeys []string // slugified form of each category label
	Slug         string   // raw filename stem
	SlugKey      string   // slugified stem, never empty
	Title        string   // first line content after the title marker, never empty
	BodyLines    []string // remaining lines, verbatim
}

// CategoryLabel returns the full category path as a display label.
func (d *Document) CategoryLabel() string {
	if len(d.Categories) == 0 {
		return "uncategorized"
	}
	return strings.Join(d.Categories, " / ")
}

// PrimaryCategory returns the top-level category label used for grouping.
func (d *Document) PrimaryCategory() string {
	if len(d.Categories) == 0 {
		return MiscellaneousCategory
	}
	return d.Categories[0]
}

// Key derives the document's localization key from its category keys and slug
// key. Uniqueness follows from the path-based construction; the parser rejects
// trees where two documents would collide.
func (d *Document) Key() string {
	parts := make([]string, 0, len(d.CategoryKeys)+1)
	for _, part := range d.CategoryKeys {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if d.SlugKey != "" {
		parts = append(parts, d.SlugKey)
	}
	suffix := strings.Join(parts, "-")
	if suffix == "" {
		suffix = "paper"
	}
	return KeyPrefix + suffix
}
