// Package generic declares built-in patterns whose trigger is a variable
// name rather than a distinctive value prefix. These are the patterns the
// scanner's generic/specific dedup step prefers to drop when a more
// specific pattern also matched the same span.
package generic

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

func ep(v float64) *float64 { return &v }

const quotes = `'"` + "`"

// Specs returns the generic provider's built-in patterns.
func Specs() []pattern.Spec {
	return []pattern.Spec{
		{
			ID:             "generic/password-assignment",
			Group:          values.GroupGeneric,
			Name:           "Generic Password Assignment",
			Description:    "Grants access to an unidentified service via a hardcoded password.",
			Severity:       values.SeverityMedium,
			Regex:          `(?i)(?:[\w.-]+[_.\-])?(?:password|passwd|pwd)(?:[_.\-][\w]*)?\s*(?:=|:|=>|:=)\s*[` + quotes + `]([^\s` + quotes + `]{8,120})[` + quotes + `]`,
			Keywords:       []string{"password", "passwd", "pwd"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyAstAssignment,
		},
		{
			ID:             "generic/api-key-assignment",
			Group:          values.GroupGeneric,
			Name:           "Generic API Key Assignment",
			Description:    "Grants access to an unidentified service via a hardcoded API key.",
			Severity:       values.SeverityMedium,
			Regex:          `(?i)(?:[\w.-]+[_.\-])?(?:api[_.\-]?key|apikey)(?:[_.\-][\w]*)?\s*(?:=|:|=>|:=)\s*[` + quotes + `]([^\s` + quotes + `]{8,120})[` + quotes + `]`,
			Keywords:       []string{"api_key", "apikey", "api-key", "api.key"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyAstAssignment,
		},
		{
			ID:             "generic/secret-assignment",
			Group:          values.GroupGeneric,
			Name:           "Generic Secret Assignment",
			Description:    "Grants access to an unidentified service via a hardcoded secret.",
			Severity:       values.SeverityMedium,
			Regex:          `(?i)(?:[\w.-]+[_.\-])?(?:secret)(?:[_.\-][\w]*)?\s*(?:=|:|=>|:=)\s*[` + quotes + `]([^\s` + quotes + `]{8,120})[` + quotes + `]`,
			Keywords:       []string{"secret"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyAstAssignment,
		},
		{
			ID:             "generic/token-assignment",
			Group:          values.GroupGeneric,
			Name:           "Generic Token Assignment",
			Description:    "Grants access to an unidentified service via a hardcoded token.",
			Severity:       values.SeverityMedium,
			Regex:          `(?i)(?:[\w.-]+[_.\-])?(?:token)(?:[_.\-][\w]*)?\s*(?:=|:|=>|:=)\s*[` + quotes + `]([^\s` + quotes + `]{8,120})[` + quotes + `]`,
			Keywords:       []string{"token"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.0),
			Strategy:       values.StrategyAstAssignment,
		},
		{
			ID:             "generic/high-entropy-string",
			Group:          values.GroupGeneric,
			Name:           "High-Entropy String Assignment",
			Description:    "A long, high-entropy value assigned to a credential-like name; unclassified provider.",
			Severity:       values.SeverityLow,
			Regex:          `(?i)(?:[\w.-]+[_.\-])?(?:credential|cred)(?:[_.\-][\w]*)?\s*(?:=|:|=>|:=)\s*[` + quotes + `]([^\s` + quotes + `]{16,120})[` + quotes + `]`,
			Keywords:       []string{"credential", "cred"},
			DefaultEnabled: true,
			MinEntropy:     ep(4.5),
			Strategy:       values.StrategyAstAssignment,
		},
	}
}
