package packages

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestNpmAccessToken_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "packages/npm-access-token"))
	assert.True(t, re.MatchString("npm_" + dup("a", 36)))
}

func TestRubyGemsAPIKey_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "packages/rubygems-api-key"))
	assert.True(t, re.MatchString("rubygems_" + dup("f", 48)))
}

func dup(c string, n int) string {
	b := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b = append(b, c[0])
	}
	return string(b)
}
