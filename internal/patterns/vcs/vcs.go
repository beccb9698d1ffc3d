// Package vcs declares built-in patterns for version-control-hosting
// credentials (GitHub, GitLab, Bitbucket).
package vcs

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the VCS provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "vcs/github-pat",
			Group:          values.GroupVCS,
			Name:           "GitHub Personal Access Token (Classic)",
			Description:    "Grants repository and API access based on token scopes.",
			Severity:       values.SeverityCritical,
			Regex:          `\b(ghp_[A-Za-z0-9]{36})\b`,
			Keywords:       []string{"ghp_"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "vcs/github-fine-grained-pat",
			Group:          values.GroupVCS,
			Name:           "GitHub Fine-Grained Personal Access Token",
			Description:    "Grants scoped access to specified repositories.",
			Severity:       values.SeverityCritical,
			Regex:          `\b(github_pat_[A-Za-z0-9]{22}_[A-Za-z0-9]{59})\b`,
			Keywords:       []string{"github_pat_"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "vcs/github-oauth-token",
			Group:          values.GroupVCS,
			Name:           "GitHub OAuth Access Token",
			Description:    "Grants delegated access to user resources via an OAuth app.",
			Severity:       values.SeverityHigh,
			Regex:          `\b(gho_[A-Za-z0-9]{36})\b`,
			Keywords:       []string{"gho_"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
			Verifiable:     true,
		},
		{
			ID:             "vcs/github-app-installation-token",
			Group:          values.GroupVCS,
			Name:           "GitHub App Server-to-Server Token",
			Description:    "Grants access to repos where the app is installed.",
			Severity:       values.SeverityCritical,
			Regex:          `\b(ghs_[A-Za-z0-9]{36})\b`,
			Keywords:       []string{"ghs_"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "vcs/gitlab-pat",
			Group:          values.GroupVCS,
			Name:           "GitLab Personal Access Token",
			Description:    "Grants API and repository access scoped at token creation.",
			Severity:       values.SeverityCritical,
			Regex:          `\b(glpat-[A-Za-z0-9_-]{20})\b`,
			Keywords:       []string{"glpat-"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "vcs/bitbucket-app-password",
			Group:          values.GroupVCS,
			Name:           "Bitbucket App Password",
			Description:    "Grants scoped Bitbucket account access.",
			Severity:       values.SeverityHigh,
			Regex:          `(?i)bitbucket[_.\-]?(?:app)?[_.\-]?password\s*(?:=|:|=>|:=)\s*['"` + "`" + `]([A-Za-z0-9]{20,32})['"` + "`" + `]`,
			Keywords:       []string{"bitbucket"},
			DefaultEnabled: true,
			MinEntropy:     ep(3.5),
			Strategy:       values.StrategyRegex,
		},
	}
}
