package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/githistory"
	"github.com/vet-dev/vet/internal/verify"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TextFormatter formats findings or history entries as human-readable
// terminal output.
type TextFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w, EnableColor: true}
}

func (f *TextFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TextFormatter) severityColor(severity string) string {
	switch severity {
	case "critical", "high":
		return colorRed
	case "medium":
		return colorYellow
	default:
		return colorGray
	}
}

// FormatFindings writes one line per finding, grouped by path, sorted by
// path then line.
//
//nolint:errcheck // best-effort terminal output
func (f *TextFormatter) FormatFindings(findings []finding.Finding, verifications map[string]verify.Result) error {
	if len(findings) == 0 {
		fmt.Fprintln(f.writer, f.colorize("No secrets found.", colorBold))
		return nil
	}

	sorted := make([]finding.Finding, len(findings))
	copy(sorted, findings)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Span.Line < sorted[j].Span.Line
	})

	for _, fd := range sorted {
		color := f.severityColor(fd.Severity.String())
		header := fmt.Sprintf("%s:%d:%d", fd.Path, fd.Span.Line, fd.Span.Column)
		fmt.Fprintf(f.writer, "%s  %s  %s\n",
			f.colorize(header, colorBold),
			f.colorize(fd.Severity.String(), color),
			fd.PatternID)
		fmt.Fprintf(f.writer, "  %s\n", fd.MaskedLine)
		fmt.Fprintf(f.writer, "  confidence=%s fingerprint=%s", fd.Confidence.String(), fingerprintHex(fd.Secret.Fingerprint()))
		if res, ok := verifications[fd.ID]; ok {
			fmt.Fprintf(f.writer, " verification=%s", res.Status.String())
		}
		fmt.Fprintln(f.writer)
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintf(f.writer, "%s\n", f.colorize(fmt.Sprintf("%d finding(s)", len(sorted)), colorBold))
	return nil
}

// FormatHistory writes one block per entry, newest occurrence first.
//
//nolint:errcheck // best-effort terminal output
func (f *TextFormatter) FormatHistory(entries []githistory.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(f.writer, f.colorize("No secrets found in history.", colorBold))
		return nil
	}

	for _, e := range entries {
		header := fmt.Sprintf("%s  (%d occurrence(s))", e.PatternID, e.OccurrenceCount)
		fmt.Fprintln(f.writer, f.colorize(header, colorBold))
		fmt.Fprintf(f.writer, "  introduced: %s by %s in %s — %s\n",
			e.IntroducedIn.Commit.Date.Format("2006-01-02"),
			e.IntroducedIn.Commit.Author,
			shortHash(e.IntroducedIn.Commit.Hash),
			e.IntroducedIn.Path)
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintf(f.writer, "%s\n", f.colorize(fmt.Sprintf("%d secret(s) found in history", len(entries)), colorBold))
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 10 {
		return hash[:10]
	}
	return hash
}
