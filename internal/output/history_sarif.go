package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/githistory"
)

// HistorySARIFFormatter formats `vet history` entries as SARIF 2.1.0 JSON,
// one result per occurrence, the entry's earliest occurrence marked via
// properties so a viewer can surface "introduced in" without a second pass.
type HistorySARIFFormatter struct {
	writer  io.Writer
	version string
}

// NewHistorySARIFFormatter creates a new history SARIF formatter.
func NewHistorySARIFFormatter(writer io.Writer, version string) *HistorySARIFFormatter {
	return &HistorySARIFFormatter{writer: writer, version: version}
}

// Format writes entries as a SARIF 2.1.0 log with a single run.
func (f *HistorySARIFFormatter) Format(entries []githistory.Entry) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("vet", "https://github.com/vet-dev/vet")
	if f.version != "" {
		run.Tool.Driver.Version = &f.version
	}

	seenRules := make(map[string]bool)
	for _, e := range entries {
		if !seenRules[e.PatternID] {
			seenRules[e.PatternID] = true
			name := e.PatternID
			rule := sarif.NewReportingDescriptor().WithID(e.PatternID)
			rule.WithName(name)
			rule.WithShortDescription(&sarif.MultiformatMessageString{Text: &name})
			run.Tool.Driver.AddRule(rule)
		}

		for _, occ := range e.Occurrences {
			run.AddResult(historyResult(e, occ))
		}
	}

	report.AddRun(run)

	if err := report.Write(f.writer); err != nil {
		return fmt.Errorf("output: write history sarif: %w", err)
	}
	_, err := f.writer.Write([]byte("\n"))
	return err
}

func historyResult(e githistory.Entry, occ githistory.Occurrence) *sarif.Result {
	result := sarif.NewRuleResult(e.PatternID)
	result.Level = "error"
	result.Kind = "fail"
	result.Message = sarif.NewTextMessage(fmt.Sprintf("%s committed by %s in %s", e.PatternID, occ.Commit.Author, occ.Commit.Hash))

	uri := filepath.ToSlash(occ.Path)
	region := sarif.NewRegion().WithStartLine(occ.Span.Line).WithStartColumn(occ.Span.Column)
	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(uri)).
		WithRegion(region)
	result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(pLoc)}

	result.PartialFingerprints = map[string]string{
		"secret/v1": finding.IDFromFingerprint(e.PatternID, e.Fingerprint),
	}

	props := sarif.NewPropertyBag()
	props.Add("commitHash", occ.Commit.Hash)
	props.Add("commitAuthor", occ.Commit.Author)
	props.Add("commitDate", occ.Commit.Date.UTC().Format("2006-01-02T15:04:05Z"))
	props.Add("occurrenceCount", e.OccurrenceCount)
	result.WithProperties(props)

	return result
}
