// Package category resolves primary paperwork categories into ordered records
// with unique slug and PascalCase identifiers.
package category

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/ident"
	"git.home.luguber.info/inful/paperforge/internal/paper"
)

// Info describes how one primary paperwork category maps onto generated assets.
type Info struct {
	RawLabel     string // cleaned primary label, identity key for lookups
	DisplayLabel string // human label, possibly overridden
	SlugKey      string // unique slug, used in lathe-category-<SlugKey> entries
	ID           string // unique PascalCase prototype id
	Comment      string
	Order        int
}

// LocalizationKey returns the category's entry name in the category catalog.
func (i Info) LocalizationKey() string {
	return "lathe-category-" + i.SlugKey
}

// BuildInfos constructs ordered category metadata for the discovered documents,
// one Info per distinct primary category in first-encounter order unless an
// override supplies an explicit order. Slug and id allocation run through
// independent namespaces so collisions in each vocabulary resolve separately.
func BuildInfos(documents []*paper.Document, overrides map[string]Override) []Info {
	infos := make(map[string]Info)
	slugs := ident.NewNamespace()
	ids := ident.NewNamespace()
	orderCounter := 0

	for _, doc := range documents {
		label := doc.PrimaryCategory()
		if _, seen := infos[label]; seen {
			continue
		}

		override := overrides[label]

		display := label
		if override.DisplayLabel != "" {
			display = override.DisplayLabel
		}

		baseSlug := ""
		if strings.TrimSpace(override.SlugBase) != "" {
			baseSlug = paper.NormalizeComponent(override.SlugBase)
		}
		if baseSlug == "" {
			baseSlug = paper.NormalizeComponent(display)
		}
		if baseSlug == "" {
			baseSlug = paper.NormalizeComponent(label)
		}
		if baseSlug == "" {
			baseSlug = "misc"
		}

		baseID := strings.TrimSpace(override.IDBase)
		if baseID == "" {
			baseID = paper.ToPascalCase(display)
		}
		if baseID == "" {
			baseID = paper.ToPascalCase(label)
		}
		if baseID == "" {
			baseID = "Category"
		}

		comment := display
		if override.Comment != "" {
			comment = override.Comment
		}

		order := orderCounter
		if override.Order != nil {
			order = *override.Order
		}
		orderCounter++

		infos[label] = Info{
			RawLabel:     label,
			DisplayLabel: display,
			SlugKey:      slugs.Slug(baseSlug),
			ID:           ids.ID(baseID),
			Comment:      comment,
			Order:        order,
		}
	}

	ordered := make([]Info, 0, len(infos))
	for _, info := range infos {
		ordered = append(ordered, info)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if al, bl := strings.ToLower(a.DisplayLabel), strings.ToLower(b.DisplayLabel); al != bl {
			return al < bl
		}
		return strings.ToLower(a.RawLabel) < strings.ToLower(b.RawLabel)
	})
	return ordered
}
