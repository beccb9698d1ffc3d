package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindingRecord_OmitsVerificationWhenNil(t *testing.T) {
	rec := FindingRecord{FindingID: "abc123", PatternID: "cloud/aws-access-key"}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "verification")
}

func TestFindingRecord_IncludesVerificationWhenSet(t *testing.T) {
	status := "live"
	rec := FindingRecord{FindingID: "abc123", Verification: &status}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"verification":"live"`)
}

func TestDiagnosticData_OmitsVerificationWhenNil(t *testing.T) {
	data := DiagnosticData{Fingerprint: "fp", FindingID: "id", Verifiable: true}

	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\"verification\"")
}

func TestHoverPayload_RoundTrips(t *testing.T) {
	payload := HoverPayload{
		PatternName:   "AWS Access Key",
		Severity:      "critical",
		Description:   "An AWS access key",
		Remediation:   "Rotate the key",
		ExposureClass: string(ExposureInHistory),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var round HoverPayload
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, payload, round)
}

func TestExposureClass_Constants(t *testing.T) {
	assert.Equal(t, ExposureClass("InHistory"), ExposureInHistory)
	assert.Equal(t, ExposureClass("NotInHistory"), ExposureNotInHistory)
	assert.Equal(t, ExposureClass("Unknown"), ExposureUnknown)
}
