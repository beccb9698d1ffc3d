package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/domain/values"
	"github.com/vet-dev/vet/internal/githistory"
	"github.com/vet-dev/vet/internal/protocol"
	"github.com/vet-dev/vet/internal/verify"
)

func TestJSONFormatter_FormatFindings_EmptyWritesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	err := f.FormatFindings(nil, nil)
	require.NoError(t, err)

	var records []protocol.FindingRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	assert.Empty(t, records)
}

func TestJSONFormatter_FormatFindings_OmitsVerificationWhenNilMap(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	fd := sampleFinding("a.go", 1, values.SeverityCritical)

	require.NoError(t, f.FormatFindings([]finding.Finding{fd}, nil))

	var records []protocol.FindingRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Verification)
}

func TestJSONFormatter_FormatFindings_IncludesVerificationWhenPresent(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	fd := sampleFinding("a.go", 1, values.SeverityCritical)
	verifications := map[string]verify.Result{fd.ID: {Status: verify.StatusInactive}}

	require.NoError(t, f.FormatFindings([]finding.Finding{fd}, verifications))

	var records []protocol.FindingRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Verification)
	assert.Equal(t, "inactive", *records[0].Verification)
}

func TestJSONFormatter_FormatHistory_FlattensOccurrencesAcrossEntries(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	entries := []githistory.Entry{
		{
			PatternID:       "cloud/aws-access-key",
			OccurrenceCount: 1,
			Occurrences: []githistory.Occurrence{
				{Path: "a.go", Commit: &githistory.CommitInfo{Hash: "abc"}},
			},
		},
		{
			PatternID:       "generic/high-entropy",
			OccurrenceCount: 1,
			Occurrences: []githistory.Occurrence{
				{Path: "b.go", Commit: &githistory.CommitInfo{Hash: "def"}},
			},
		},
	}

	require.NoError(t, f.FormatHistory(entries))

	var records []protocol.HistoryRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "a.go", records[0].Path)
	assert.Equal(t, "b.go", records[1].Path)
}

func TestJSONFormatter_FormatHistory_EmptyWritesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	require.NoError(t, f.FormatHistory(nil))

	var records []protocol.HistoryRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	assert.Empty(t, records)
}
