package verify

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/paperforge/internal/util/sets"
)

// ErrMalformedArtifact indicates a bundle file could not be read or does not
// have the expected top-level shape. Distinct from content findings, which
// never produce an error.
var ErrMalformedArtifact = errors.New("malformed artifact")

var catalogEntryRE = regexp.MustCompile(`^([a-z0-9-]+)\s*=`)

// entry is the shape shared by every generated prototype list. Unknown fields
// are ignored, so one type covers entities, recipes, packs and categories.
type entry struct {
	Type       string      `yaml:"type"`
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Result     string      `yaml:"result"`
	Categories []string    `yaml:"categories"`
	Recipes    []string    `yaml:"recipes"`
	Components []component `yaml:"components"`
}

type component struct {
	Type    string `yaml:"type"`
	Content string `yaml:"content"`
}

type metadataFile struct {
	Documents []metadataEntry `yaml:"documents"`
}

type metadataEntry struct {
	Key        string   `yaml:"key"`
	Name       string   `yaml:"name"`
	Categories []string `yaml:"categories"`
}

func readEntries(path string) ([]entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrMalformedArtifact, path, err)
	}
	var entries []entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s must hold a YAML sequence: %w", ErrMalformedArtifact, path, err)
	}
	return entries, nil
}

// readMetadata returns the document records keyed by localization key plus the
// set of category ids the metadata references.
func readMetadata(path string) (map[string]metadataEntry, sets.Set[string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s: %w", ErrMalformedArtifact, path, err)
	}
	var file metadataFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("%w: %s must hold a documents mapping: %w", ErrMalformedArtifact, path, err)
	}

	docs := make(map[string]metadataEntry, len(file.Documents))
	categories := sets.New[string]()
	for _, doc := range file.Documents {
		if doc.Key == "" {
			continue
		}
		docs[doc.Key] = doc
		for _, id := range doc.Categories {
			categories.Add(id)
		}
	}
	return docs, categories, nil
}

// readCatalogKeys scans a localization file for entry keys with the expected
// prefix, skipping comments and blank lines.
func readCatalogKeys(path, prefix string) (sets.Set[string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrMalformedArtifact, path, err)
	}

	keys := sets.New[string]()
	for _, line := range strings.Split(string(raw), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		match := catalogEntryRE.FindStringSubmatch(stripped)
		if match == nil {
			continue
		}
		if strings.HasPrefix(match[1], prefix) {
			keys.Add(match[1])
		}
	}
	return keys, nil
}
