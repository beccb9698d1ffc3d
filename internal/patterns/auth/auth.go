// Package auth declares built-in patterns for generic authentication
// tokens not specific to a single named provider.
package auth

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

// Specs returns the auth provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "auth/basic-auth-credentials-in-url",
			Group:          values.GroupAuth,
			Name:           "HTTP Basic Auth Credentials in URL",
			Description:    "A URL carrying a plaintext username:password pair.",
			Severity:       values.SeverityHigh,
			Regex:          `https?://[^\s:/@'"` + "`" + `]+:[^\s:/@'"` + "`" + `]+@[^\s'"` + "`" + `]+`,
			Keywords:       nil,
			DefaultEnabled: true,
			MinEntropy:     ep(3.0),
			Strategy:       values.StrategyRegex,
		},
		{
			ID:             "auth/bearer-token-header",
			Group:          values.GroupAuth,
			Name:           "Hardcoded Bearer Token",
			Description:    "A bearer token hardcoded into an Authorization header value.",
			Severity:       values.SeverityMedium,
			Regex:          `(?i)bearer\s+[a-zA-Z0-9_\-.~+/]{20,}=*`,
			Keywords:       []string{"bearer "},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyRegex,
		},
	}
}
