// Package check runs sanity checks against parsed paperwork documents:
// duplicated body content and missing stamp areas.
package check

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/paperforge/internal/paper"
)

// Severity indicates the importance level of a check issue.
type Severity int

const (
	// SeverityWarning indicates issues worth fixing but not blocking.
	SeverityWarning Severity = iota
	// SeverityError indicates issues that fail the check run.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue represents a single problem found across the document set.
type Issue struct {
	Severity Severity
	Message  string
}

// Result contains all issues found during a check run.
type Result struct {
	Issues    []Issue
	Documents int // total documents checked
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Options select which findings escalate from warning to error.
type Options struct {
	StrictStamps     bool // fail when a document lacks a stamp area
	FailOnDuplicates bool // fail when body content repeats across documents
}

// Documents checks the full document set and accumulates every issue.
func Documents(documents []*paper.Document, opts Options) *Result {
	result := &Result{Documents: len(documents)}

	duplicates := make(map[string][]string)
	var bodyOrder []string
	var missingStamp []string

	for _, doc := range documents {
		if body := normalizeBody(doc.BodyLines); body != "" {
			if _, seen := duplicates[body]; !seen {
				bodyOrder = append(bodyOrder, body)
			}
			duplicates[body] = append(duplicates[body], doc.Path)
		}

		hasStamp := false
		for _, line := range doc.BodyLines {
			if strings.Contains(strings.ToLower(line), "stamp") {
				hasStamp = true
				break
			}
		}
		if !hasStamp {
			missingStamp = append(missingStamp, doc.Path)
		}
	}

	for _, body := range bodyOrder {
		paths := duplicates[body]
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		result.Issues = append(result.Issues, Issue{
			Severity: severityFor(opts.FailOnDuplicates),
			Message:  fmt.Sprintf("duplicate body content across: %s", strings.Join(paths, ", ")),
		})
	}

	if len(missingStamp) > 0 {
		sort.Strings(missingStamp)
		result.Issues = append(result.Issues, Issue{
			Severity: severityFor(opts.StrictStamps),
			Message:  fmt.Sprintf("missing possible stamp area: %s", strings.Join(missingStamp, ", ")),
		})
	}

	return result
}

// normalizeBody squashes insignificant whitespace so duplicate forms are easier
// to spot.
func normalizeBody(lines []string) string {
	var stripped []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			stripped = append(stripped, trimmed)
		}
	}
	return strings.Join(stripped, "\n")
}

func severityFor(strict bool) Severity {
	if strict {
		return SeverityError
	}
	return SeverityWarning
}
