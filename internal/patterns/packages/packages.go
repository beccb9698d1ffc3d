// Package packages declares built-in patterns for package registry
// publishing credentials.
package packages

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the package-registry provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "packages/npm-access-token",
			Group:          values.GroupPackages,
			Name:           "npm Access Token",
			Description:    "Grants publish access to packages under an npm account.",
			Severity:       values.SeverityHigh,
			Regex:          `\bnpm_[A-Za-z0-9]{36}\b`,
			Keywords:       []string{"npm_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "packages/pypi-api-token",
			Group:          values.GroupPackages,
			Name:           "PyPI API Token",
			Description:    "Grants publish access to packages under a PyPI account.",
			Severity:       values.SeverityHigh,
			Regex:          `\bpypi-AgEIcHlwaS5vcmc[A-Za-z0-9_-]{50,1000}\b`,
			Keywords:       []string{"pypi-AgEIcHlwaS5vcmc"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "packages/rubygems-api-key",
			Group:          values.GroupPackages,
			Name:           "RubyGems API Key",
			Description:    "Grants publish access to gems under a RubyGems account.",
			Severity:       values.SeverityHigh,
			Regex:          `\brubygems_[a-f0-9]{48}\b`,
			Keywords:       []string{"rubygems_"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
	}
}
