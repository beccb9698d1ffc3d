// Package seeded augments the hand-written built-in catalogue with a small,
// curated subset of gitleaks' default rule set: well-established
// high-entropy prefixes (AWS access keys, generic high-entropy secrets)
// that are tedious to maintain by hand and are already reviewed upstream.
// Only a fixed allowlist of rule ids is imported, not gitleaks' full
// several-hundred-rule catalogue, to keep the false-positive rate the rest
// of the pattern set was tuned for.
package seeded

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/zricethezav/gitleaks/v8/config"

	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

// allowlist names the gitleaks default-config rule ids pulled into vet's
// built-in catalogue, mapped to the severity vet's own scheme assigns them
// (gitleaks carries no severity concept of its own).
var allowlist = map[string]values.Severity{
	"aws-access-token":   values.SeverityCritical,
	"generic-api-key":    values.SeverityMedium,
	"private-key":        values.SeverityCritical,
	"github-pat":         values.SeverityHigh,
	"slack-access-token": values.SeverityHigh,
}

// Specs translates gitleaks' embedded default TOML config the same way the
// redaction package's detector does, then compiles the allowlisted rules
// into pattern.Spec values. A rule id absent from gitleaks' current default
// config (an upstream rename or removal) is silently skipped rather than
// treated as an error: this catalogue is supplementary, not load-bearing.
func Specs() []pattern.Spec {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(config.DefaultConfig)); err != nil {
		return nil
	}

	var vc config.ViperConfig
	if err := v.Unmarshal(&vc); err != nil {
		return nil
	}
	cfg, err := vc.Translate()
	if err != nil {
		return nil
	}

	var out []pattern.Spec
	for id, sev := range allowlist {
		rule, ok := cfg.Rules[id]
		if !ok || rule.Regex == nil {
			continue
		}
		out = append(out, pattern.Spec{
			ID:             "seeded/" + id,
			Group:          values.GroupGeneric,
			Name:           rule.Description,
			Description:    rule.Description,
			Severity:       sev,
			Regex:          rule.Regex.String(),
			Keywords:       rule.Keywords,
			DefaultEnabled: true,
			Strategy:       values.StrategyRegex,
		})
	}
	return out
}
