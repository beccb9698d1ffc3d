// Package scanner implements the C6 scan pipeline: candidate selection via
// the pattern registry, regex and AST detection, entropy gating, and
// generic/specific deduplication.
package scanner

import (
	"context"
	"strings"

	"github.com/vet-dev/vet/internal/ast"
	"github.com/vet-dev/vet/internal/detect"
	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/secret"
	"github.com/vet-dev/vet/internal/domain/values"
)

// defaultASTEntropyThreshold is used for AST-strategy patterns that carry
// no explicit min_entropy.
const defaultASTEntropyThreshold = 4.0

const binaryProbeWindow = 8 * 1024

// Scanner runs the detection pipeline over one file's content at a time.
// It is read-only after construction and safe for concurrent use: nothing
// about scanning a given content blob mutates shared state, matching the
// pure scan_content contract.
type Scanner struct {
	registry  *pattern.Registry
	detector  *ast.Detector
	threshold *values.Severity
}

// New builds a Scanner over registry. detector may be nil, in which case
// the AST phase only ever runs against .env files. severityThreshold, if
// non-nil, restricts both phases to patterns at or above that severity.
func New(registry *pattern.Registry, detector *ast.Detector, severityThreshold *values.Severity) *Scanner {
	return &Scanner{registry: registry, detector: detector, threshold: severityThreshold}
}

// ScanContent scans content (the full text of a file at path) and returns
// every surviving Finding.
func (s *Scanner) ScanContent(content, path string) []finding.Finding {
	var out []finding.Finding
	s.ScanContentInto(content, path, &out)
	return out
}

// ScanContentInto scans content and appends surviving Findings to out.
func (s *Scanner) ScanContentInto(content, path string, out *[]finding.Finding) {
	if looksBinary(content) {
		return
	}

	must := s.registry.CandidatesFor([]byte(content))

	var findings []finding.Finding
	findings = append(findings, s.regexPhase(content, path, must)...)
	findings = append(findings, s.astPhase(content, path, must)...)

	*out = append(*out, dedupGenericSpecific(findings)...)
}

func (s *Scanner) inScope(p *pattern.Pattern) bool {
	if s.threshold == nil {
		return true
	}
	return p.Severity().AtLeast(*s.threshold)
}

func (s *Scanner) regexPhase(content, path string, must []bool) []finding.Finding {
	var out []finding.Finding
	for i, p := range s.registry.Patterns() {
		if !must[i] || !p.DefaultEnabled() || p.Strategy() != values.StrategyRegex || !s.inScope(p) {
			continue
		}
		for _, rm := range detect.Regex(content, p) {
			raw := content[rm.Start:rm.End]
			confidence := confidenceFor(raw, p)
			sec := secret.New(raw)
			f := finding.Finding{
				ID:         finding.NewID(p.ID(), sec),
				Path:       path,
				Span:       finding.DeriveSpan(content, rm.Start, rm.End),
				PatternID:  p.ID(),
				Secret:     sec,
				Severity:   p.Severity(),
				MaskedLine: finding.MaskedLine(content, rm.Start, rm.End, sec.Masked()),
				Confidence: confidence,
			}
			out = append(out, f)
		}
	}
	return out
}

func (s *Scanner) astPhase(content, path string, must []bool) []finding.Finding {
	var groups []ast.TriggerGroup
	byID := make(map[string]*pattern.Pattern)
	for i, p := range s.registry.Patterns() {
		if !must[i] || !p.DefaultEnabled() || p.Strategy() != values.StrategyAstAssignment || !s.inScope(p) {
			continue
		}
		groups = append(groups, ast.NewTriggerGroup(p.ID(), p.Keywords()))
		byID[p.ID()] = p
	}
	if len(groups) == 0 {
		return nil
	}

	var matches []ast.Match
	base := baseName(path)
	switch {
	case ast.IsEnvFile(base):
		for _, m := range ast.ScanEnv(content, groups) {
			matches = append(matches, ast.Match{PatternID: m.PatternID, Start: m.Start, End: m.End})
		}
	case s.detector != nil:
		lang := ast.LanguageForPath(path)
		if lang == ast.LangUnsupported {
			return nil
		}
		found, err := s.detector.Detect(context.Background(), []byte(content), lang, groups)
		if err != nil {
			return nil
		}
		matches = found
	}

	var out []finding.Finding
	for _, m := range matches {
		p, ok := byID[m.PatternID]
		if !ok {
			continue
		}
		if detect.LineContainsIgnore(content, m.Start) {
			continue
		}
		raw := content[m.Start:m.End]
		confidence := astConfidenceFor(raw, p)
		sec := secret.New(raw)
		out = append(out, finding.Finding{
			ID:         finding.NewID(p.ID(), sec),
			Path:       path,
			Span:       finding.DeriveSpan(content, m.Start, m.End),
			PatternID:  p.ID(),
			Secret:     sec,
			Severity:   p.Severity(),
			MaskedLine: finding.MaskedLine(content, m.Start, m.End, sec.Masked()),
			Confidence: confidence,
		})
	}
	return out
}

func confidenceFor(raw string, p *pattern.Pattern) values.Confidence {
	threshold, ok := p.MinEntropy()
	if !ok {
		return values.ConfidenceHigh
	}
	if secret.ShannonEntropy(raw) >= threshold {
		return values.ConfidenceHigh
	}
	return values.ConfidenceLow
}

func astConfidenceFor(raw string, p *pattern.Pattern) values.Confidence {
	threshold, ok := p.MinEntropy()
	if !ok {
		threshold = defaultASTEntropyThreshold
	}
	if secret.ShannonEntropy(raw) >= threshold {
		return values.ConfidenceHigh
	}
	return values.ConfidenceLow
}

// dedupGenericSpecific drops any generic/* finding whose span overlaps a
// non-generic finding's span, but only once both kinds are present.
func dedupGenericSpecific(findings []finding.Finding) []finding.Finding {
	var generic, specific []finding.Finding
	for _, f := range findings {
		if strings.HasPrefix(f.PatternID, "generic/") {
			generic = append(generic, f)
		} else {
			specific = append(specific, f)
		}
	}
	if len(generic) == 0 || len(specific) == 0 {
		return findings
	}

	out := append([]finding.Finding(nil), specific...)
	for _, g := range generic {
		overlaps := false
		for _, sp := range specific {
			if spansOverlap(g.Span.ByteStart, g.Span.ByteEnd, sp.Span.ByteStart, sp.Span.ByteEnd) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			out = append(out, g)
		}
	}
	return out
}

func spansOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func looksBinary(content string) bool {
	window := content
	if len(window) > binaryProbeWindow {
		window = window[:binaryProbeWindow]
	}
	return strings.IndexByte(window, 0) >= 0
}

func baseName(path string) string {
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
