// Package ai declares built-in patterns for AI provider API keys.
package ai

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the AI provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "ai/openai-api-key",
			Group:          values.GroupAI,
			Name:           "OpenAI API Key",
			Description:    "Grants access to an OpenAI account's completions and billing.",
			Severity:       values.SeverityHigh,
			Regex:          `\bsk-[A-Za-z0-9]{20}T3BlbkFJ[A-Za-z0-9]{20}\b`,
			Keywords:       []string{"T3BlbkFJ"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "ai/anthropic-api-key",
			Group:          values.GroupAI,
			Name:           "Anthropic API Key",
			Description:    "Grants access to an Anthropic account's API usage and billing.",
			Severity:       values.SeverityHigh,
			Regex:          `\bsk-ant-api03-[A-Za-z0-9_-]{93}\b`,
			Keywords:       []string{"sk-ant-api03-"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "ai/huggingface-token",
			Group:          values.GroupAI,
			Name:           "Hugging Face Access Token",
			Description:    "Grants access to a Hugging Face account's models and inference endpoints.",
			Severity:       values.SeverityMedium,
			Regex:          `\bhf_[A-Za-z0-9]{34}\b`,
			Keywords:       []string{"hf_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
	}
}
