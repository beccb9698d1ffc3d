// Package remediation implements the C12 remediation engine: offset-
// tracked rewrites of a single file's text, and the atomic write that
// persists them.
package remediation

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vet-dev/vet/internal/domain/finding"
)

// ActionKind selects one remediation action.
type ActionKind int

const (
	Redact ActionKind = iota
	Placeholder
	DeleteLine
	Ignore
)

// Action is one edit to apply to a Finding's span.
type Action struct {
	Kind ActionKind
	// Env overrides the placeholder variable name for Placeholder actions.
	// Empty uses DefaultEnvName(finding.PatternID).
	Env string
}

const redactedPlaceholder = "<REDACTED>"

// DefaultEnvName derives a placeholder environment variable name from a
// pattern id: the uppercased, underscore-joined last `/`-segment.
// "payments/stripe-secret" -> "STRIPE_SECRET".
func DefaultEnvName(patternID string) string {
	segment := patternID
	if idx := strings.LastIndexByte(patternID, '/'); idx >= 0 {
		segment = patternID[idx+1:]
	}
	segment = strings.ReplaceAll(segment, "-", "_")
	return strings.ToUpper(segment)
}

// Apply applies action to f's span within content, given delta (the sum of
// every prior edit's bytesChanged applied to the same file, when callers
// process multiple findings in byte_start order). It returns the rewritten
// content and the signed byte delta this action introduced. An out-of-
// range offset after adjustment is a no-op: it returns content unchanged
// and delta 0.
func Apply(content string, f finding.Finding, action Action, delta int) (string, int) {
	start := f.Span.ByteStart + delta
	end := f.Span.ByteEnd + delta
	if start < 0 || end > len(content) || start > end {
		return content, 0
	}

	switch action.Kind {
	case Redact:
		return spliceReplace(content, start, end, redactedPlaceholder)
	case Placeholder:
		env := action.Env
		if env == "" {
			env = DefaultEnvName(f.PatternID)
		}
		return spliceReplace(content, start, end, "${"+env+"}")
	case DeleteLine:
		return deleteLine(content, start)
	case Ignore:
		return appendIgnoreComment(content, start, f.Path)
	default:
		return content, 0
	}
}

func spliceReplace(content string, start, end int, replacement string) (string, int) {
	out := content[:start] + replacement + content[end:]
	return out, len(replacement) - (end - start)
}

func deleteLine(content string, pos int) (string, int) {
	lineStart := strings.LastIndexByte(content[:pos], '\n') + 1
	lineEnd := len(content)
	if idx := strings.IndexByte(content[pos:], '\n'); idx >= 0 {
		lineEnd = pos + idx + 1
	}
	out := content[:lineStart] + content[lineEnd:]
	return out, -(lineEnd - lineStart)
}

func appendIgnoreComment(content string, pos int, path string) (string, int) {
	lineEnd := len(content)
	if idx := strings.IndexByte(content[pos:], '\n'); idx >= 0 {
		lineEnd = pos + idx
	}
	line := content[strings.LastIndexByte(content[:pos], '\n')+1 : lineEnd]
	if strings.Contains(line, "vet:ignore") {
		return content, 0
	}

	addition := " " + IgnoreComment(path)
	out := content[:lineEnd] + addition + content[lineEnd:]
	return out, len(addition)
}

// WriteAtomic writes content to path via a sibling temp file and rename,
// preserving path's existence across a mid-write crash.
func WriteAtomic(path string, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vet-remediate-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
