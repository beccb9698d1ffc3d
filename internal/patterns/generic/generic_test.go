package generic

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vet-dev/vet/internal/domain/values"
)

func specByID(t *testing.T, id string) string {
	t.Helper()
	for _, s := range Specs() {
		if s.ID == id {
			return s.Regex
		}
	}
	t.Fatalf("no spec with id %s", id)
	return ""
}

func TestSpecs_AllRegexesCompile(t *testing.T) {
	for _, s := range Specs() {
		_, err := regexp.Compile(s.Regex)
		require.NoError(t, err, s.ID)
	}
}

func TestSpecs_AllUseASTAssignmentStrategy(t *testing.T) {
	for _, s := range Specs() {
		assert.Equal(t, values.StrategyAstAssignment, s.Strategy)
	}
}

func TestPasswordAssignment_MatchesQuotedValue(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "generic/password-assignment"))
	assert.True(t, re.MatchString(`db_password = "correcthorsebattery"`))
}

func TestAPIKeyAssignment_MatchesQuotedValue(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "generic/api-key-assignment"))
	assert.True(t, re.MatchString(`api_key: "abcdefgh12345678"`))
}

func TestTokenAssignment_NoMatchOnShortValue(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "generic/token-assignment"))
	assert.False(t, re.MatchString(`token = "short"`))
}
