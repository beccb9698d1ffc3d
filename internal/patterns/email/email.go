// Package email declares built-in patterns for email and SMTP provider
// credentials.
package email

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the email provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "email/sendgrid-api-key",
			Group:          values.GroupEmail,
			Name:           "SendGrid API Key",
			Description:    "Grants access to send mail and manage an account through SendGrid.",
			Severity:       values.SeverityHigh,
			Regex:          `\bSG\.[A-Za-z0-9_-]{22}\.[A-Za-z0-9_-]{43}\b`,
			Keywords:       []string{"SG."},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "email/mailgun-api-key",
			Group:          values.GroupEmail,
			Name:           "Mailgun API Key",
			Description:    "Grants access to send mail and manage domains through Mailgun.",
			Severity:       values.SeverityHigh,
			Regex:          `\bkey-[0-9a-f]{32}\b`,
			Keywords:       []string{"key-"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "email/postmark-server-token",
			Group:          values.GroupEmail,
			Name:           "Postmark Server API Token",
			Description:    "Grants access to send mail through a Postmark server.",
			Severity:       values.SeverityMedium,
			Regex:          `(?i)postmark[_.\-]?(?:server)?[_.\-]?token\s*(?:=|:|=>|:=)\s*['"` + "`" + `]([A-Za-z0-9]{8}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}-[A-Za-z0-9]{12})['"` + "`" + `]`,
			Keywords:       []string{"postmark"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
		},
	}
}
