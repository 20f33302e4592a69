// Package errors provides sentinel errors for paperwork document processing.
// These enable consistent classification of parse-stage failures at the CLI boundary.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentFormat indicates a document violates the structural contract
	// (empty content, missing or blank title line). Always fatal to the run.
	ErrDocumentFormat = errors.New("document format error")

	// ErrDocumentIO indicates a source document could not be read.
	ErrDocumentIO = errors.New("document read failed")

	// ErrNoDocuments indicates the docs root contains no eligible documents.
	// There is no valid empty output state, so this is a format error.
	ErrNoDocuments = fmt.Errorf("%w: no paperwork documents found", ErrDocumentFormat)
)
