package vcs

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

func TestGitHubPAT_MatchesClassicPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "vcs/github-pat"))
	assert.True(t, re.MatchString("ghp_" + dup("a", 36)))
}

func TestGitHubFineGrainedPAT_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "vcs/github-fine-grained-pat"))
	assert.True(t, re.MatchString("github_pat_" + dup("a", 22) + "_" + dup("b", 59)))
}

func TestGitLabPAT_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "vcs/gitlab-pat"))
	assert.True(t, re.MatchString("glpat-" + dup("a", 20)))
}

func dup(c string, n int) string {
	b := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b = append(b, c[0])
	}
	return string(b)
}
