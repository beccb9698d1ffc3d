package infra

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

func TestBuildkiteAPIToken_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "infra/buildkite-api-token"))
	assert.True(t, re.MatchString("bkua_" + dup("a", 40)))
}

func TestTerraformCloudToken_MatchesAtlasv1Marker(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "infra/terraform-cloud-token"))
	assert.True(t, re.MatchString(dup("a", 14) + ".atlasv1." + dup("b", 70)))
}

func dup(c string, n int) string {
	b := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b = append(b, c[0])
	}
	return string(b)
}
