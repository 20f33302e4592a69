package paper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	perrors "git.home.luguber.info/inful/paperforge/internal/paper/errors"
)

// TitleMarker starts the mandatory first line of every document.
const TitleMarker = "#"

// ParseDocument reads and validates a single paperwork file beneath root.
func ParseDocument(path, root string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", perrors.ErrDocumentIO, path, err)
	}

	text := string(raw)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: document %s is empty", perrors.ErrDocumentFormat, path)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	if !strings.HasPrefix(strings.TrimLeft(lines[0], " \t"), TitleMarker) {
		return nil, fmt.Errorf("%w: document %s must begin with a title line (e.g. '# Title')",
			perrors.ErrDocumentFormat, path)
	}

	title := strings.TrimSpace(strings.TrimPrefix(strings.TrimLeft(lines[0], " \t"), TitleMarker))
	if title == "" {
		return nil, fmt.Errorf("%w: title line in %s is empty", perrors.ErrDocumentFormat, path)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not under %s: %w", perrors.ErrDocumentIO, path, root, err)
	}
	rel = filepath.ToSlash(rel)

	var categories, categoryKeys []string
	if dir := filepath.ToSlash(filepath.Dir(rel)); dir != "." {
		for _, segment := range strings.Split(dir, "/") {
			if label := CleanCategoryLabel(segment); label != "" {
				categories = append(categories, label)
			}
		}
		for _, label := range categories {
			if key := NormalizeComponent(label); key != "" {
				categoryKeys = append(categoryKeys, key)
			}
		}
	}

	slug := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	slugKey := NormalizeComponent(slug)
	if slugKey == "" {
		slugKey = digitRunRE.ReplaceAllString(strings.ToLower(slug), "")
	}
	if slugKey == "" {
		slugKey = "document"
	}

	return &Document{
		Path:         rel,
		Categories:   categories,
		CategoryKeys: categoryKeys,
		Slug:         slug,
		SlugKey:      slugKey,
		Title:        title,
		BodyLines:    lines[1:],
	}, nil
}
