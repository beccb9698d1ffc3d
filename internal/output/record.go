// Package output renders scan and history results as JSON, SARIF 2.1.0, or
// human-readable text, sharing the protocol record shapes with the LSP.
package output

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/githistory"
	"github.com/vet-dev/vet/internal/protocol"
	"github.com/vet-dev/vet/internal/verify"
)

// fingerprintHex renders a Secret's 64-bit fingerprint as 16 lowercase hex
// characters, little-endian, matching the byte order FindingID hashes over.
func fingerprintHex(fp uint64) string {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], fp)
	return hex.EncodeToString(b[:])
}

// ToFindingRecord converts one Finding (with an optional verification
// result, nil when unverified or unsupported) into its wire record.
func ToFindingRecord(f finding.Finding, v *verify.Result) protocol.FindingRecord {
	rec := protocol.FindingRecord{
		FindingID:   f.ID,
		PatternID:   f.PatternID,
		Severity:    f.Severity.String(),
		Confidence:  f.Confidence.String(),
		Path:        f.Path,
		Line:        f.Span.Line,
		Column:      f.Span.Column,
		Masked:      f.Secret.Masked(),
		MaskedLine:  f.MaskedLine,
		Fingerprint: fingerprintHex(f.Secret.Fingerprint()),
	}
	if v != nil {
		status := v.Status.String()
		rec.Verification = &status
	}
	return rec
}

// ToHistoryRecords flattens one history.Entry into one HistoryRecord per
// Occurrence, each carrying the entry's aggregate OccurrenceCount.
func ToHistoryRecords(e githistory.Entry) []protocol.HistoryRecord {
	recs := make([]protocol.HistoryRecord, 0, len(e.Occurrences))
	for _, occ := range e.Occurrences {
		recs = append(recs, protocol.HistoryRecord{
			PatternID:       e.PatternID,
			Fingerprint:     fingerprintHex(e.Fingerprint),
			OccurrenceCount: e.OccurrenceCount,
			Path:            occ.Path,
			Line:            occ.Span.Line,
			CommitHash:      occ.Commit.Hash,
			CommitAuthor:    occ.Commit.Author,
			CommitDate:      occ.Commit.Date.UTC().Format("2006-01-02T15:04:05Z"),
			CommitSubject:   occ.Commit.Subject,
		})
	}
	return recs
}
