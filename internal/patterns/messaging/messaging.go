// Package messaging declares built-in patterns for chat and messaging
// platform credentials.
package messaging

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the messaging provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "messaging/slack-token",
			Group:          values.GroupMessaging,
			Name:           "Slack Token",
			Description:    "Grants API access to a Slack workspace; scope depends on token type prefix.",
			Severity:       values.SeverityHigh,
			Regex:          `\bxox[baprs]-[0-9a-zA-Z-]{10,72}\b`,
			Keywords:       []string{"xoxb-", "xoxa-", "xoxp-", "xoxr-", "xoxs-"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "messaging/slack-webhook-url",
			Group:          values.GroupMessaging,
			Name:           "Slack Incoming Webhook URL",
			Description:    "Allows posting messages to a Slack channel without authentication.",
			Severity:       values.SeverityMedium,
			Regex:          `https://hooks\.slack\.com/services/T[A-Za-z0-9]{8,10}/B[A-Za-z0-9]{8,10}/[A-Za-z0-9]{24}`,
			Keywords:       []string{"hooks.slack.com/services/"},
			DefaultEnabled: true,
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "messaging/discord-webhook-url",
			Group:          values.GroupMessaging,
			Name:           "Discord Webhook URL",
			Description:    "Allows posting messages to a Discord channel without authentication.",
			Severity:       values.SeverityMedium,
			Regex:          `https://discord(?:app)?\.com/api/webhooks/\d{17,20}/[A-Za-z0-9_-]{60,70}`,
			Keywords:       []string{"discord.com/api/webhooks/", "discordapp.com/api/webhooks/"},
			DefaultEnabled: true,
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "messaging/twilio-api-key",
			Group:          values.GroupMessaging,
			Name:           "Twilio API Key",
			Description:    "Grants access to a Twilio account's messaging and voice APIs.",
			Severity:       values.SeverityHigh,
			Regex:          `\bSK[0-9a-fA-F]{32}\b`,
			Keywords:       []string{"SK"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
	}
}
