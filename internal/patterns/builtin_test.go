package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecs_ReturnsNonEmptyCatalogue(t *testing.T) {
	specs := Specs()
	assert.NotEmpty(t, specs)
}

func TestSpecs_AllIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Specs() {
		require.False(t, seen[s.ID], "duplicate pattern id: %s", s.ID)
		seen[s.ID] = true
	}
}

func TestBuiltin_CompilesEverySpecWithoutPanicking(t *testing.T) {
	require.NotPanics(t, func() {
		patterns := Builtin()
		assert.Equal(t, len(Specs()), len(patterns))
	})
}

func TestBuiltin_EveryPatternHasNonEmptyID(t *testing.T) {
	for _, p := range Builtin() {
		assert.NotEmpty(t, p.ID())
	}
}
