// Package payments declares built-in patterns for payment processor secrets.
package payments

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the payments provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "payments/stripe-live-secret-key",
			Group:          values.GroupPayments,
			Name:           "Stripe Live Secret Key",
			Description:    "Grants full API access to production payment processing.",
			Severity:       values.SeverityCritical,
			Regex:          `\b(sk_live_[a-zA-Z0-9]{10,99})\b`,
			Keywords:       []string{"sk_live_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "payments/stripe-test-secret-key",
			Group:          values.GroupPayments,
			Name:           "Stripe Test Secret Key",
			Description:    "Exposes test data and configuration (no real money access).",
			Severity:       values.SeverityLow,
			Regex:          `\b(sk_test_[a-zA-Z0-9]{10,99})\b`,
			Keywords:       []string{"sk_test_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "payments/stripe-live-restricted-key",
			Group:          values.GroupPayments,
			Name:           "Stripe Live Restricted API Key",
			Description:    "Grants scoped production access based on key permissions.",
			Severity:       values.SeverityCritical,
			Regex:          `\b(rk_live_[a-zA-Z0-9]{10,99})\b`,
			Keywords:       []string{"rk_live_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "payments/stripe-webhook-secret",
			Group:          values.GroupPayments,
			Name:           "Stripe Webhook Signing Secret",
			Description:    "Allows forging webhook events to your application if compromised.",
			Severity:       values.SeverityHigh,
			Regex:          `\b(whsec_[a-zA-Z0-9]{24,64})\b`,
			Keywords:       []string{"whsec_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "payments/paypal-braintree-access-token",
			Group:          values.GroupPayments,
			Name:           "PayPal Braintree Access Token",
			Description:    "Grants access to a Braintree merchant account.",
			Severity:       values.SeverityCritical,
			Regex:          `\b(access_token\$production\$[a-z0-9]{16}\$[a-f0-9]{32})\b`,
			Keywords:       []string{"access_token$production$"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
	}
}
