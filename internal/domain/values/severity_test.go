package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity_ValidNamesCaseInsensitive(t *testing.T) {
	cases := []struct {
		in   string
		want Severity
	}{
		{"low", SeverityLow},
		{"Medium", SeverityMedium},
		{"HIGH", SeverityHigh},
		{"  critical  ", SeverityCritical},
	}
	for _, c := range cases {
		got, err := ParseSeverity(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseSeverity_InvalidNameErrors(t *testing.T) {
	_, err := ParseSeverity("extreme")
	assert.Error(t, err)
}

func TestSeverity_AtLeastOrdering(t *testing.T) {
	assert.True(t, SeverityCritical.AtLeast(SeverityHigh))
	assert.True(t, SeverityHigh.AtLeast(SeverityHigh))
	assert.False(t, SeverityLow.AtLeast(SeverityMedium))
}

func TestSeverity_LessThan(t *testing.T) {
	assert.True(t, SeverityLow.LessThan(SeverityMedium))
	assert.False(t, SeverityCritical.LessThan(SeverityHigh))
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(SeverityHigh)
	require.NoError(t, err)
	assert.Equal(t, `"high"`, string(b))

	var s Severity
	require.NoError(t, json.Unmarshal(b, &s))
	assert.Equal(t, SeverityHigh, s)
}

func TestSeverity_UnmarshalJSONInvalid(t *testing.T) {
	var s Severity
	err := json.Unmarshal([]byte(`"bogus"`), &s)
	assert.Error(t, err)
}
