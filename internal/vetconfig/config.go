// Package vetconfig loads and writes the `.vet.toml` project configuration:
// severity threshold, path exclusions, custom patterns, and baseline
// ignore entries.
package vetconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/domain/values"
)

// CustomPattern mirrors one `[[patterns]]` table entry.
type CustomPattern struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Regex       string   `toml:"regex"`
	Severity    string   `toml:"severity"`
	Description string   `toml:"description"`
	Keywords    []string `toml:"keywords"`
	MinEntropy  *float64 `toml:"min_entropy"`
}

// IgnoreEntry mirrors one `[[ignore]]` table entry.
type IgnoreEntry struct {
	Fingerprint string `toml:"fingerprint"`
	PatternID   string `toml:"pattern_id"`
	File        string `toml:"file"`
	Reason      string `toml:"reason"`
}

// Config is the decoded shape of `.vet.toml`.
type Config struct {
	Severity           string          `toml:"severity"`
	ExcludePaths       []string        `toml:"exclude_paths"`
	MaxFileSize        int64           `toml:"max_file_size"`
	MinimumConfidence  string          `toml:"minimum_confidence"`
	DisabledPatterns   []string        `toml:"disabled_patterns"`
	BaselinePath       string          `toml:"baseline_path"`
	Patterns           []CustomPattern `toml:"patterns"`
	Ignore             []IgnoreEntry   `toml:"ignore"`

	// path is the directory containing the loaded file, used to resolve
	// BaselinePath relative to it. Empty for a default (no-file) Config.
	path string
}

// Default returns the zero-value configuration spec.md mandates when no
// `.vet.toml` exists: no severity floor, no exclusions, High confidence
// minimum, no disabled patterns.
func Default() *Config {
	return &Config{MinimumConfidence: "high"}
}

// Load reads and decodes path. A missing file is not an error: it returns
// Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("vetconfig: read %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("vetconfig: parse %s: %w", path, err)
	}
	cfg.path = filepath.Dir(path)
	return cfg, nil
}

// Save writes cfg back to path as TOML.
func Save(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vetconfig: create %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("vetconfig: encode %s: %w", path, err)
	}
	return nil
}

// ResolvedBaselinePath returns BaselinePath resolved relative to the
// directory the config was loaded from.
func (c *Config) ResolvedBaselinePath() string {
	if c.BaselinePath == "" {
		return ""
	}
	if filepath.IsAbs(c.BaselinePath) {
		return c.BaselinePath
	}
	return filepath.Join(c.path, c.BaselinePath)
}

// SeverityThreshold parses Severity, returning nil (no floor) if unset.
func (c *Config) SeverityThreshold() (*values.Severity, error) {
	if c.Severity == "" {
		return nil, nil
	}
	sev, err := values.ParseSeverity(c.Severity)
	if err != nil {
		return nil, fmt.Errorf("vetconfig: severity: %w", err)
	}
	return &sev, nil
}

// CompilePatterns compiles every `[[patterns]]` entry into a pattern.Spec.
// An invalid regex is a hard error naming the offending pattern id, per
// spec.md §6.
func (c *Config) CompilePatterns() ([]pattern.Spec, error) {
	specs := make([]pattern.Spec, 0, len(c.Patterns))
	for _, cp := range c.Patterns {
		severity := values.SeverityMedium
		if cp.Severity != "" {
			sev, err := values.ParseSeverity(cp.Severity)
			if err != nil {
				return nil, fmt.Errorf("vetconfig: pattern %s: %w", cp.ID, err)
			}
			severity = sev
		}
		specs = append(specs, pattern.Spec{
			ID:             cp.ID,
			Group:          values.GroupCustom,
			Name:           cp.Name,
			Description:    cp.Description,
			Severity:       severity,
			Regex:          cp.Regex,
			Keywords:       cp.Keywords,
			DefaultEnabled: true,
			MinEntropy:     cp.MinEntropy,
			Strategy:       values.StrategyRegex,
		})
	}
	// Validate eagerly so a malformed regex surfaces before the registry
	// is built, with the pattern id attached.
	for _, spec := range specs {
		if _, err := pattern.New(spec); err != nil {
			return nil, err
		}
	}
	return specs, nil
}

// IsDisabled reports whether id appears in DisabledPatterns.
func (c *Config) IsDisabled(id string) bool {
	for _, d := range c.DisabledPatterns {
		if d == id {
			return true
		}
	}
	return false
}
