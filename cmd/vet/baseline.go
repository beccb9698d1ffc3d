package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vet-dev/vet/internal/domain/baseline"
	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/walker"
)

var baselineConfigPath string

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage the reviewed-findings baseline",
}

var baselineCreateCmd = &cobra.Command{
	Use:   "create [paths...]",
	Short: "Scan and record every current finding as accepted",
	Args:  cobra.ArbitraryArgs,
	RunE:  runBaselineCreate,
}

var baselineUpdateCmd = &cobra.Command{
	Use:   "update [paths...]",
	Short: "Rescan and add any new findings to the existing baseline, preserving prior dispositions",
	Args:  cobra.ArbitraryArgs,
	RunE:  runBaselineUpdate,
}

var baselineStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print accepted/ignored/total counts for the baseline",
	Args:  cobra.NoArgs,
	RunE:  runBaselineStats,
}

func init() {
	baselineCmd.PersistentFlags().StringVarP(&baselineConfigPath, "config", "c", "", "path to .vet.toml (default ./.vet.toml)")
	baselineCmd.AddCommand(baselineCreateCmd, baselineUpdateCmd, baselineStatsCmd)
	rootCmd.AddCommand(baselineCmd)
}

func runBaselineCreate(cmd *cobra.Command, args []string) error {
	return scanIntoBaseline(args, baseline.New(version, time.Now()))
}

func runBaselineUpdate(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(baselineConfigPath, "")
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}
	path := env.cfg.ResolvedBaselinePath()
	if path == "" {
		return exitWith(ExitRuntime, "no baseline_path configured in .vet.toml")
	}
	bl, err := baseline.Load(path)
	if err != nil {
		if err == baseline.ErrNotFound {
			bl = baseline.New(version, time.Now())
		} else {
			return exitWith(ExitRuntime, err.Error())
		}
	}
	return scanIntoBaseline(args, bl)
}

func scanIntoBaseline(paths []string, bl *baseline.Baseline) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	env, err := loadEnvironment(baselineConfigPath, "")
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}
	path := env.cfg.ResolvedBaselinePath()
	if path == "" {
		return exitWith(ExitRuntime, "no baseline_path configured in .vet.toml")
	}

	files, err := env.walker.Walk(paths)
	if err != nil {
		return exitWith(ExitRuntime, fmt.Sprintf("walk: %s", err))
	}

	now := time.Now()
	for _, p := range files {
		content, ok, err := walker.ReadFile(p, env.cfg.MaxFileSize)
		if err != nil || !ok {
			continue
		}
		for _, f := range env.scanner.ScanContent(content, p) {
			fp := baselineFingerprint(f)
			bl.AddFinding(baseline.Entry{
				Fingerprint: fp,
				PatternID:   f.PatternID,
				Severity:    f.Severity,
				File:        f.Path,
				SecretHash:  f.Secret.FullHash(),
				Status:      baseline.StatusAccepted,
				ReviewedAt:  now,
			})
		}
	}

	if err := bl.Save(path, version, now); err != nil {
		return exitWith(ExitRuntime, err.Error())
	}
	stats := bl.ComputeStats()
	fmt.Printf("baseline written to %s: %d total (%d accepted, %d ignored)\n", path, stats.Total, stats.Accepted, stats.Ignored)
	return nil
}

func baselineFingerprint(f finding.Finding) string {
	return baseline.CalculateFingerprint(f.PatternID, f.Path, f.Secret.FullHash())
}

func runBaselineStats(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(baselineConfigPath, "")
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}
	path := env.cfg.ResolvedBaselinePath()
	if path == "" {
		return exitWith(ExitRuntime, "no baseline_path configured in .vet.toml")
	}
	bl, err := baseline.Load(path)
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}
	stats := bl.ComputeStats()
	fmt.Printf("total: %d\naccepted: %d\nignored: %d\n", stats.Total, stats.Accepted, stats.Ignored)
	return nil
}
