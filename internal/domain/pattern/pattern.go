// Package pattern defines the compiled Pattern type and the registry that
// indexes a set of patterns for fast candidate pre-filtering.
package pattern

import (
	"fmt"
	"regexp"

	"github.com/vet-dev/vet/internal/domain/values"
)

// Pattern is a compiled detector. A Pattern is immutable once constructed by
// New; callers never mutate its fields after that point.
type Pattern struct {
	id             string
	group          values.Group
	name           string
	description    string
	severity       values.Severity
	regex          *regexp.Regexp
	keywords       []string
	defaultEnabled bool
	minEntropy     *float64
	strategy       values.Strategy
	verifiable     bool
}

// Spec is the plain-data shape used to construct a Pattern, mirroring how
// both the built-in catalogue and `.vet.toml` custom patterns are declared.
type Spec struct {
	ID             string
	Group          values.Group
	Name           string
	Description    string
	Severity       values.Severity
	Regex          string
	Keywords       []string
	DefaultEnabled bool
	MinEntropy     *float64
	Strategy       values.Strategy
	Verifiable     bool
}

// New compiles a Spec into a Pattern. A malformed regex is a fatal,
// startup-time error that surfaces the offending pattern id.
func New(spec Spec) (*Pattern, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("pattern: id must not be empty")
	}
	re, err := regexp.Compile(spec.Regex)
	if err != nil {
		return nil, fmt.Errorf("pattern %s: invalid regex: %w", spec.ID, err)
	}
	return &Pattern{
		id:             spec.ID,
		group:          spec.Group,
		name:           spec.Name,
		description:    spec.Description,
		severity:       spec.Severity,
		regex:          re,
		keywords:       append([]string(nil), spec.Keywords...),
		defaultEnabled: spec.DefaultEnabled,
		minEntropy:     spec.MinEntropy,
		strategy:       spec.Strategy,
		verifiable:     spec.Verifiable,
	}, nil
}

func (p *Pattern) ID() string               { return p.id }
func (p *Pattern) Group() values.Group      { return p.group }
func (p *Pattern) Name() string             { return p.name }
func (p *Pattern) Description() string      { return p.description }
func (p *Pattern) Severity() values.Severity { return p.severity }
func (p *Pattern) Regex() *regexp.Regexp    { return p.regex }
func (p *Pattern) Keywords() []string       { return p.keywords }
func (p *Pattern) DefaultEnabled() bool     { return p.defaultEnabled }
func (p *Pattern) Strategy() values.Strategy { return p.strategy }
func (p *Pattern) Verifiable() bool         { return p.verifiable }

// MinEntropy returns the configured threshold and whether one was set.
func (p *Pattern) MinEntropy() (float64, bool) {
	if p.minEntropy == nil {
		return 0, false
	}
	return *p.minEntropy, true
}
