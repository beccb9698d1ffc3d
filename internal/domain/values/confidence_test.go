package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidence_String(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "low", ConfidenceLow.String())
}

func TestConfidence_AtLeast(t *testing.T) {
	assert.True(t, ConfidenceHigh.AtLeast(ConfidenceLow))
	assert.True(t, ConfidenceLow.AtLeast(ConfidenceLow))
	assert.False(t, ConfidenceLow.AtLeast(ConfidenceHigh))
}

func TestConfidence_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(ConfidenceHigh)
	require.NoError(t, err)
	assert.Equal(t, `"high"`, string(b))
}
