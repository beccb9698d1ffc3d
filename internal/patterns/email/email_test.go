package email

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

func TestSendGridAPIKey_MatchesThreePartFormat(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "email/sendgrid-api-key"))
	value := "SG." + dup("a", 22) + "." + dup("b", 43)
	assert.True(t, re.MatchString(value))
}

func TestSendGridKey_MarkedVerifiable(t *testing.T) {
	for _, s := range Specs() {
		if s.ID == "email/sendgrid-api-key" {
			assert.True(t, s.Verifiable)
			return
		}
	}
	t.Fatal("sendgrid spec not found")
}

func TestMailgunAPIKey_MatchesKeyPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "email/mailgun-api-key"))
	assert.True(t, re.MatchString("key-"+dup("f", 32)))
}

func dup(c string, n int) string {
	b := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b = append(b, c[0])
	}
	return string(b)
}
