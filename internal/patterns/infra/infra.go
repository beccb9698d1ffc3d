// Package infra declares built-in patterns for CI/CD and infrastructure
// provider credentials.
package infra

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the infra provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "infra/buildkite-api-token",
			Group:          values.GroupInfra,
			Name:           "Buildkite API Access Token",
			Description:    "Grants access to a Buildkite organization's pipelines and builds.",
			Severity:       values.SeverityHigh,
			Regex:          `\bbkua_[0-9a-f]{40}\b`,
			Keywords:       []string{"bkua_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "infra/confluent-api-key",
			Group:          values.GroupInfra,
			Name:           "Confluent Cloud API Key",
			Description:    "Grants access to a Confluent Cloud Kafka cluster.",
			Severity:       values.SeverityHigh,
			Regex:          `(?i)confluent[_.\-]?(?:api)?[_.\-]?key\s*(?:=|:|=>|:=)\s*['"` + "`" + `]([A-Z0-9]{16})['"` + "`" + `]`,
			Keywords:       []string{"confluent"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "infra/datadog-api-key",
			Group:          values.GroupInfra,
			Name:           "Datadog API Key",
			Description:    "Grants metric and log ingestion access to a Datadog organization.",
			Severity:       values.SeverityMedium,
			Regex:          `(?i)datadog[_.\-]?(?:api)?[_.\-]?key\s*(?:=|:|=>|:=)\s*['"` + "`" + `]([a-f0-9]{32})['"` + "`" + `]`,
			Keywords:       []string{"datadog"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "infra/terraform-cloud-token",
			Group:          values.GroupInfra,
			Name:           "Terraform Cloud API Token",
			Description:    "Grants access to a Terraform Cloud organization's workspaces and state.",
			Severity:       values.SeverityCritical,
			Regex:          `\b([A-Za-z0-9]{14}\.atlasv1\.[A-Za-z0-9_-]{60,90})\b`,
			Keywords:       []string{".atlasv1."},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
		},
	}
}
