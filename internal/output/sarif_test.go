package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/domain/values"
)

func TestSeverityToLevel_CriticalAndHighAreError(t *testing.T) {
	assert.Equal(t, "error", severityToLevel(values.SeverityCritical))
	assert.Equal(t, "error", severityToLevel(values.SeverityHigh))
}

func TestSeverityToLevel_MediumIsWarning(t *testing.T) {
	assert.Equal(t, "warning", severityToLevel(values.SeverityMedium))
}

func TestSeverityToLevel_LowIsNote(t *testing.T) {
	assert.Equal(t, "note", severityToLevel(values.SeverityLow))
}

func TestSARIFFormatter_Format_EmptyFindingsProducesValidLog(t *testing.T) {
	var buf bytes.Buffer
	f := NewSARIFFormatter(&buf, "1.0.0")

	err := f.Format(nil, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"version": "2.1.0"`)
}

func TestSARIFFormatter_Format_OneRulePerDistinctPatternID(t *testing.T) {
	var buf bytes.Buffer
	f := NewSARIFFormatter(&buf, "1.0.0")

	findings := []finding.Finding{
		sampleFinding("a.go", 1, values.SeverityCritical),
		sampleFinding("b.go", 2, values.SeverityCritical),
	}

	err := f.Format(findings, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, countOccurrences(out, `"id": "cloud/aws-access-key"`))
}

func TestSARIFFormatter_Format_IncludesResultLocationAndMaskedSecret(t *testing.T) {
	var buf bytes.Buffer
	f := NewSARIFFormatter(&buf, "1.0.0")

	findings := []finding.Finding{sampleFinding("config/prod.env", 7, values.SeverityHigh)}

	err := f.Format(findings, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "config/prod.env")
	assert.Contains(t, out, `"maskedSecret"`)
}

func countOccurrences(haystack, needle string) int {
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			count++
			i += len(needle) - 1
		}
	}
	return count
}
