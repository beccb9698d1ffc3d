package ai

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

func TestOpenAIKey_MatchesLegacyFormat(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "ai/openai-api-key"))
	value := "sk-" + repeatChar("a", 20) + "T3BlbkFJ" + repeatChar("b", 20)
	assert.True(t, re.MatchString(value))
}

func TestAnthropicKey_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "ai/anthropic-api-key"))
	value := "sk-ant-api03-" + repeatChar("a", 93)
	assert.True(t, re.MatchString(value))
}

func TestHuggingFaceToken_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "ai/huggingface-token"))
	value := "hf_" + repeatChar("a", 34)
	assert.True(t, re.MatchString(value))
}

func repeatChar(c string, n int) string {
	b := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b = append(b, c[0])
	}
	return string(b)
}
