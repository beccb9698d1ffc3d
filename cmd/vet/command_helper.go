package main

import (
	"fmt"
	"path/filepath"

	"github.com/vet-dev/vet/internal/ast"
	"github.com/vet-dev/vet/internal/domain/baseline"
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/patterns"
	"github.com/vet-dev/vet/internal/scanner"
	"github.com/vet-dev/vet/internal/verify"
	"github.com/vet-dev/vet/internal/verify/providers"
	"github.com/vet-dev/vet/internal/vetconfig"
	"github.com/vet-dev/vet/internal/walker"
)

// vetEnvironment bundles every dependency a scan-family command needs,
// built once from the resolved `.vet.toml`.
type vetEnvironment struct {
	cfg      *vetconfig.Config
	registry *pattern.Registry
	scanner  *scanner.Scanner
	walker   *walker.Walker
	verifier *verify.Registry
	matcher  *baseline.IgnoreMatcher
}

// loadEnvironment resolves configPath (empty means "./.vet.toml"), compiles
// the built-in and custom pattern catalogues, and constructs a Scanner,
// Walker, verification Registry, and IgnoreMatcher from it.
func loadEnvironment(configPath string, baselineOverride string) (*vetEnvironment, error) {
	if configPath == "" {
		configPath = ".vet.toml"
	}
	cfg, err := vetconfig.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	custom, err := cfg.CompilePatterns()
	if err != nil {
		return nil, err
	}

	specs := append(patterns.Specs(), custom...)
	compiled := make([]*pattern.Pattern, 0, len(specs))
	for _, spec := range specs {
		if cfg.IsDisabled(spec.ID) {
			continue
		}
		p, err := pattern.New(spec)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, p)
	}
	registry := pattern.NewRegistry(compiled)

	detector, err := ast.NewDetector()
	if err != nil {
		return nil, fmt.Errorf("init ast detector: %w", err)
	}

	threshold, err := cfg.SeverityThreshold()
	if err != nil {
		return nil, err
	}

	sc := scanner.New(registry, detector, threshold)
	w := walker.New(cfg.ExcludePaths, true)
	verifier := verify.NewRegistry(providers.Builtin())

	// An explicit --baseline flag pointing at a missing file is a hard
	// error; a baseline_path configured in .vet.toml alone tolerates one
	// (the project simply has no baseline yet).
	bPath := baselineOverride
	if bPath == "" {
		bPath = cfg.ResolvedBaselinePath()
	}
	var bl *baseline.Baseline
	if bPath != "" {
		bl, err = baseline.Load(bPath)
		if err == baseline.ErrNotFound {
			if baselineOverride != "" {
				return nil, fmt.Errorf("baseline not found: %s", bPath)
			}
			bl = nil
		} else if err != nil {
			return nil, fmt.Errorf("load baseline: %w", err)
		}
	}

	ignoreEntries := make([]baseline.IgnoreEntry, 0, len(cfg.Ignore))
	for _, ig := range cfg.Ignore {
		ignoreEntries = append(ignoreEntries, baseline.IgnoreEntry{
			Fingerprint: ig.Fingerprint,
			PatternID:   ig.PatternID,
			File:        ig.File,
			Reason:      ig.Reason,
		})
	}
	matcher := baseline.NewIgnoreMatcher(bl, ignoreEntries)

	return &vetEnvironment{
		cfg:      cfg,
		registry: registry,
		scanner:  sc,
		walker:   w,
		verifier: verifier,
		matcher:  matcher,
	}, nil
}

// absConfigPath resolves a possibly-empty config flag value against the
// scan root, mirroring how `.vet.toml` is conventionally found at the
// project root rather than the working directory a subcommand runs from.
func absConfigPath(root, flag string) string {
	if flag != "" {
		return flag
	}
	return filepath.Join(root, ".vet.toml")
}
