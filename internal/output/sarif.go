package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/domain/values"
	"github.com/vet-dev/vet/internal/verify"
)

// SARIFFormatter formats scan findings as SARIF 2.1.0 JSON: one rule per
// distinct pattern id, one result per finding.
type SARIFFormatter struct {
	writer  io.Writer
	version string
}

// NewSARIFFormatter creates a new SARIF formatter. version is the vet
// release string reported as the tool driver's version.
func NewSARIFFormatter(writer io.Writer, version string) *SARIFFormatter {
	return &SARIFFormatter{writer: writer, version: version}
}

// Format writes findings as a SARIF 2.1.0 log with a single run.
func (f *SARIFFormatter) Format(findings []finding.Finding, verifications map[string]verify.Result) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("vet", "https://github.com/vet-dev/vet")
	if f.version != "" {
		run.Tool.Driver.Version = &f.version
	}

	m := newSarifMapper()
	m.addFindings(run, findings, verifications)

	report.AddRun(run)

	if err := report.Write(f.writer); err != nil {
		return fmt.Errorf("output: write sarif: %w", err)
	}
	_, err := f.writer.Write([]byte("\n"))
	return err
}

type sarifMapper struct {
	seenRules map[string]bool
}

func newSarifMapper() *sarifMapper {
	return &sarifMapper{seenRules: make(map[string]bool)}
}

func (m *sarifMapper) addFindings(run *sarif.Run, findings []finding.Finding, verifications map[string]verify.Result) {
	for _, fd := range findings {
		m.addRule(run, fd)
		run.AddResult(m.mapResult(fd, verifications))
	}
}

// addRule registers one SARIF rule per distinct pattern id, skipping ids
// already seen in this run.
func (m *sarifMapper) addRule(run *sarif.Run, fd finding.Finding) {
	if m.seenRules[fd.PatternID] {
		return
	}
	m.seenRules[fd.PatternID] = true

	name := fd.PatternID
	rule := sarif.NewReportingDescriptor().WithID(fd.PatternID)
	rule.WithName(name)
	rule.WithShortDescription(&sarif.MultiformatMessageString{Text: &name})

	level := severityToLevel(fd.Severity)
	rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: level})

	props := sarif.NewPropertyBag()
	props.Add("severity", fd.Severity.String())
	rule.WithProperties(props)

	run.Tool.Driver.AddRule(rule)
}

func (m *sarifMapper) mapResult(fd finding.Finding, verifications map[string]verify.Result) *sarif.Result {
	result := sarif.NewRuleResult(fd.PatternID)
	result.Level = severityToLevel(fd.Severity)
	result.Kind = "fail"
	result.Message = sarif.NewTextMessage(fmt.Sprintf("Potential %s secret", fd.PatternID))

	uri := filepath.ToSlash(fd.Path)
	region := sarif.NewRegion().WithStartLine(fd.Span.Line).WithStartColumn(fd.Span.Column)
	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(uri)).
		WithRegion(region)
	result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(pLoc)}

	props := sarif.NewPropertyBag()
	props.Add("confidence", fd.Confidence.String())
	props.Add("maskedSecret", fd.Secret.Masked())
	if res, ok := verifications[fd.ID]; ok {
		props.Add("verificationStatus", res.Status.String())
	}
	result.WithProperties(props)

	return result
}

// severityToLevel applies the three-tier SARIF level mapping: Critical and
// High are "error", Medium is "warning", Low is "note".
func severityToLevel(sev values.Severity) string {
	switch sev.String() {
	case "critical", "high":
		return "error"
	case "medium":
		return "warning"
	default:
		return "note"
	}
}
