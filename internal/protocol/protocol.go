// Package protocol centralises the wire types shared between the CLI's
// JSON/SARIF output and the LSP's diagnostic data payload, so both render
// the same finding shape.
package protocol

// FindingRecord is the bit-exact JSON shape of one scan finding.
type FindingRecord struct {
	FindingID    string  `json:"finding_id"`
	PatternID    string  `json:"pattern_id"`
	Severity     string  `json:"severity"`
	Confidence   string  `json:"confidence"`
	Path         string  `json:"path"`
	Line         int     `json:"line"`
	Column       int     `json:"column"`
	Masked       string  `json:"masked_secret"`
	MaskedLine   string  `json:"masked_line"`
	Fingerprint  string  `json:"fingerprint"`
	Verification *string `json:"verification,omitempty"`
}

// HistoryRecord is the bit-exact JSON shape of one `vet history` entry.
type HistoryRecord struct {
	PatternID       string `json:"pattern_id"`
	Fingerprint     string `json:"fingerprint"`
	OccurrenceCount int    `json:"occurrence_count"`
	Path            string `json:"path"`
	Line            int    `json:"line"`
	CommitHash      string `json:"commit_hash"`
	CommitAuthor    string `json:"commit_author"`
	CommitDate      string `json:"commit_date"`
	CommitSubject   string `json:"commit_subject"`
}

// DiagnosticData is the `data` payload attached to every vet LSP
// diagnostic.
type DiagnosticData struct {
	Fingerprint  string               `json:"fingerprint"`
	FindingID    string               `json:"findingId"`
	Verifiable   bool                 `json:"verifiable"`
	Verification *VerificationPayload `json:"verification,omitempty"`
}

// VerificationPayload mirrors a cached verify.Result for transport.
type VerificationPayload struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// HoverPayload is the result of the custom `vet/hoverData` request.
type HoverPayload struct {
	PatternName   string               `json:"patternName"`
	Severity      string               `json:"severity"`
	Description   string               `json:"description"`
	Verification  *VerificationPayload `json:"verification,omitempty"`
	Remediation   string               `json:"remediation"`
	ExposureClass string               `json:"exposureClass"`
}

// ExposureClass enumerates the git-exposure classes used to pick
// remediation text in the hover payload.
type ExposureClass string

const (
	ExposureInHistory    ExposureClass = "InHistory"
	ExposureNotInHistory ExposureClass = "NotInHistory"
	ExposureUnknown      ExposureClass = "Unknown"
)
