package lsp

import (
	"fmt"

	"github.com/vet-dev/vet/internal/domain/baseline"
	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/domain/values"
	"github.com/vet-dev/vet/internal/protocol"
	"github.com/vet-dev/vet/internal/verify"
)

// DiagnosticSeverity mirrors the LSP wire severities vet ever emits.
type DiagnosticSeverity int

const (
	SeverityError DiagnosticSeverity = iota + 1
	SeverityWarning
	SeverityInformation
)

// DiagnosticInfo is a transport-agnostic diagnostic, converted to a
// protocol_3_16 diagnostic at the glsp boundary in server.go.
type DiagnosticInfo struct {
	StartLine int
	StartChar int
	EndLine   int
	EndChar   int
	Severity  DiagnosticSeverity
	Code      string
	Message   string
	Tags      []string
	Data      protocol.DiagnosticData
}

// severityFor maps a Finding's domain severity to the base LSP severity,
// before any cached-verification override is applied.
func severityFor(sev values.Severity) DiagnosticSeverity {
	switch sev.String() {
	case "critical", "high":
		return SeverityError
	case "medium":
		return SeverityWarning
	default:
		return SeverityInformation
	}
}

// BuildDiagnostics converts findings (already filtered by confidence and
// the ignore matcher) into DiagnosticInfo, applying the cached-verification
// message/severity override spec.md §4.10 step 8 describes.
func BuildDiagnostics(path string, findings []finding.Finding, verifiable func(patternID string) bool, cached func(findingID string) *verify.Result) []DiagnosticInfo {
	out := make([]DiagnosticInfo, 0, len(findings))
	for _, f := range findings {
		sev := severityFor(f.Severity)
		message := fmt.Sprintf("Potential %s secret detected", f.PatternID)

		var tags []string
		if f.Confidence == values.ConfidenceLow {
			tags = append(tags, "unnecessary")
		}

		data := protocol.DiagnosticData{
			Fingerprint: baseline.CalculateFingerprint(f.PatternID, path, f.Secret.FullHash()),
			FindingID:   f.ID,
			Verifiable:  verifiable(f.PatternID),
		}

		if res := cached(f.ID); res != nil {
			payload := &protocol.VerificationPayload{Status: res.Status.String(), Service: res.Service, Reason: res.Reason}
			data.Verification = payload

			switch res.Status {
			case verify.StatusLive:
				sev = SeverityError
				message = fmt.Sprintf("LIVE – %s credential is active", f.PatternID)
			case verify.StatusInactive:
				sev = SeverityWarning
				message = fmt.Sprintf("Inactive – %s credential did not verify", f.PatternID)
			case verify.StatusInconclusive:
				message = fmt.Sprintf("%s (verification inconclusive)", message)
			}
		}

		out = append(out, DiagnosticInfo{
			StartLine: f.Span.Line - 1,
			StartChar: f.Span.Column - 1,
			EndLine:   f.Span.Line - 1,
			EndChar:   f.Span.Column - 1 + (f.Span.ByteEnd - f.Span.ByteStart),
			Severity:  sev,
			Code:      f.PatternID,
			Message:   message,
			Tags:      tags,
			Data:      data,
		})
	}
	return out
}
