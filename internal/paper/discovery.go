package paper

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/logfields"
	perrors "git.home.luguber.info/inful/paperforge/internal/paper/errors"
	"git.home.luguber.info/inful/paperforge/internal/util/sets"
)

// internalMarker excludes a file when any path segment starts with it.
// Used to mark fragment directories not meant to be standalone documents.
const internalMarker = "_"

var acceptedExtensions = sets.New(".txt", ".paper")

// Discovery walks a docs root and produces the ordered document set.
type Discovery struct {
	root string
}

// NewDiscovery creates a discovery instance for the given docs root.
func NewDiscovery(root string) *Discovery {
	return &Discovery{root: root}
}

// ListPaths returns every eligible document path beneath the root, sorted
// lexicographically by slash-relative path so downstream output order is
// independent of filesystem iteration order.
func (d *Discovery) ListPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if !acceptedExtensions.Has(strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		if shouldSkip(filepath.ToSlash(rel)) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %w", perrors.ErrDocumentIO, d.root, err)
	}

	sort.Slice(paths, func(i, j int) bool {
		ri, _ := filepath.Rel(d.root, paths[i])
		rj, _ := filepath.Rel(d.root, paths[j])
		return filepath.ToSlash(ri) < filepath.ToSlash(rj)
	})
	return paths, nil
}

// Discover parses every eligible document. Any parse failure aborts the run;
// downstream artifacts must all reflect the same consistent document set.
func (d *Discovery) Discover() ([]*Document, error) {
	paths, err := d.ListPaths()
	if err != nil {
		return nil, err
	}

	documents := make([]*Document, 0, len(paths))
	keyOwners := make(map[string]string, len(paths))
	for _, path := range paths {
		doc, err := ParseDocument(path, d.root)
		if err != nil {
			return nil, err
		}
		if owner, taken := keyOwners[doc.Key()]; taken {
			return nil, fmt.Errorf("%w: documents %s and %s both derive key %q",
				perrors.ErrDocumentFormat, owner, doc.Path, doc.Key())
		}
		keyOwners[doc.Key()] = doc.Path
		documents = append(documents, doc)
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("%w under %s", perrors.ErrNoDocuments, d.root)
	}

	slog.Debug("Paperwork documents discovered",
		logfields.DocsDir(d.root), logfields.Documents(len(documents)))
	return documents, nil
}

func shouldSkip(rel string) bool {
	for _, segment := range strings.Split(rel, "/") {
		if strings.HasPrefix(segment, internalMarker) {
			return true
		}
	}
	return false
}
