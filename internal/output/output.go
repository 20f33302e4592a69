// Package output writes generated artifacts, skipping destinations whose
// content is already byte-identical so repeated runs cause no spurious writes.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteIfChanged writes content to path, creating parent directories as
// needed. It reports whether a write happened; byte-identical destinations are
// left untouched.
func WriteIfChanged(path, content string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create output directory for %s: %w", path, err)
	}

	next := []byte(content)
	if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, next) {
		return false, nil
	}

	if err := os.WriteFile(path, next, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
