package payments

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

func TestStripeLiveSecretKey_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "payments/stripe-live-secret-key"))
	assert.True(t, re.MatchString("sk_live_abcdefghijklmnop"))
}

func TestStripeLiveSecretKey_MarkedVerifiable(t *testing.T) {
	for _, s := range Specs() {
		if s.ID == "payments/stripe-live-secret-key" {
			assert.True(t, s.Verifiable)
			return
		}
	}
	t.Fatal("stripe-live-secret-key spec not found")
}

func TestStripeTestSecretKey_SeverityIsLow(t *testing.T) {
	for _, s := range Specs() {
		if s.ID == "payments/stripe-test-secret-key" {
			assert.Equal(t, "low", s.Severity.String())
			return
		}
	}
	t.Fatal("stripe-test-secret-key spec not found")
}

func TestStripeWebhookSecret_MatchesPrefix(t *testing.T) {
	re := regexp.MustCompile(specByID(t, "payments/stripe-webhook-secret"))
	assert.True(t, re.MatchString("whsec_abcdefghijklmnopqrstuvwx"))
}
