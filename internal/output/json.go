package output

import (
	"encoding/json"
	"io"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/githistory"
	"github.com/vet-dev/vet/internal/protocol"
	"github.com/vet-dev/vet/internal/verify"
)

// JSONFormatter writes findings or history entries as a JSON array of
// protocol records, field order fixed by the struct tags in package
// protocol.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// FormatFindings writes findings as a `[]protocol.FindingRecord` JSON
// array. verifications maps a FindingID to its verify.Result, when the
// caller ran verification; a nil map omits every `verification` field.
func (f *JSONFormatter) FormatFindings(findings []finding.Finding, verifications map[string]verify.Result) error {
	records := make([]protocol.FindingRecord, 0, len(findings))
	for _, fd := range findings {
		var v *verify.Result
		if res, ok := verifications[fd.ID]; ok {
			v = &res
		}
		records = append(records, ToFindingRecord(fd, v))
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// FormatHistory writes history entries as a `[]protocol.HistoryRecord`
// JSON array, one record per occurrence.
func (f *JSONFormatter) FormatHistory(entries []githistory.Entry) error {
	records := make([]protocol.HistoryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, ToHistoryRecords(e)...)
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
