package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID     = "run_id"
	KeyDocsDir   = "docs_dir"
	KeyPath      = "path"
	KeyArtifact  = "artifact"
	KeyDocKey    = "doc_key"
	KeyCategory  = "category"
	KeyDocuments = "documents"
	KeyWritten   = "written"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr      { return slog.String(KeyRunID, id) }
func DocsDir(dir string) slog.Attr   { return slog.String(KeyDocsDir, dir) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Artifact(p string) slog.Attr    { return slog.String(KeyArtifact, p) }
func DocKey(k string) slog.Attr      { return slog.String(KeyDocKey, k) }
func Category(c string) slog.Attr    { return slog.String(KeyCategory, c) }
func Documents(n int) slog.Attr      { return slog.Int(KeyDocuments, n) }
func Written(n int) slog.Attr        { return slog.Int(KeyWritten, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
