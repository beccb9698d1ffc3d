package lsp

import (
	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/protocol"
	"github.com/vet-dev/vet/internal/remediation"
)

// CodeActionKind enumerates the code actions vet offers for a vet
// diagnostic.
type CodeActionKind int

const (
	ActionIgnoreLine CodeActionKind = iota
	ActionIgnoreInConfig
	ActionVerify
	ActionIgnoreAllOnLine
)

// CodeAction is a transport-agnostic code action, converted to a
// protocol_3_16 CodeAction at the glsp boundary.
type CodeAction struct {
	Kind      CodeActionKind
	Title     string
	Findings  []finding.Finding
	EditText  string // for ActionIgnoreLine: the comment text to append
}

// BuildCodeActions returns the actions available for the vet diagnostics
// whose span intersects the requested range, grouped by line per
// spec.md §4.10: an "ignore all" action only appears when ≥2 diagnostics
// share a line.
func BuildCodeActions(intersecting []finding.Finding, verifiableData map[string]protocol.DiagnosticData) []CodeAction {
	if len(intersecting) == 0 {
		return nil
	}

	var actions []CodeAction
	byLine := make(map[int][]finding.Finding)

	for _, f := range intersecting {
		byLine[f.Span.Line] = append(byLine[f.Span.Line], f)

		actions = append(actions, CodeAction{
			Kind:     ActionIgnoreLine,
			Title:    "Ignore on this line",
			Findings: []finding.Finding{f},
			EditText: remediation.IgnoreComment(f.Path),
		})
		actions = append(actions, CodeAction{
			Kind:     ActionIgnoreInConfig,
			Title:    "Ignore in config",
			Findings: []finding.Finding{f},
		})
		if data, ok := verifiableData[f.ID]; ok && data.Verifiable {
			actions = append(actions, CodeAction{
				Kind:     ActionVerify,
				Title:    "Verify",
				Findings: []finding.Finding{f},
			})
		}
	}

	for _, findings := range byLine {
		if len(findings) >= 2 {
			actions = append(actions, CodeAction{
				Kind:     ActionIgnoreAllOnLine,
				Title:    "Ignore all secrets on this line",
				Findings: findings,
				EditText: remediation.IgnoreComment(findings[0].Path),
			})
		}
	}

	return actions
}
