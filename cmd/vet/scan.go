package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vet-dev/vet/internal/domain/baseline"
	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/output"
	"github.com/vet-dev/vet/internal/verify"
	"github.com/vet-dev/vet/internal/walker"
)

var (
	scanFormat       string
	scanConfigPath   string
	scanBaselinePath string
	scanNoColor      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan files or directories for leaked secrets",
	Args:  cobra.ArbitraryArgs,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "text", "output format: text, json, sarif")
	scanCmd.Flags().StringVarP(&scanConfigPath, "config", "c", "", "path to .vet.toml (default ./.vet.toml)")
	scanCmd.Flags().StringVar(&scanBaselinePath, "baseline", "", "explicit baseline file path (missing file is a hard error)")
	scanCmd.Flags().BoolVar(&scanNoColor, "no-color", false, "disable ANSI color in text output")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	env, err := loadEnvironment(scanConfigPath, scanBaselinePath)
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	files, err := env.walker.Walk(paths)
	if err != nil {
		return exitWith(ExitRuntime, fmt.Sprintf("walk: %s", err))
	}

	var findings []finding.Finding
	for _, path := range files {
		content, ok, err := walker.ReadFile(path, env.cfg.MaxFileSize)
		if err != nil || !ok {
			continue // scan-time per-file errors (unreadable, binary, over-limit) are non-fatal: skip silently.
		}
		findings = append(findings, filterIgnoredFindings(env, path, env.scanner.ScanContent(content, path))...)
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Path != findings[j].Path {
			return findings[i].Path < findings[j].Path
		}
		return findings[i].Span.Line < findings[j].Span.Line
	})

	verifications := map[string]verify.Result{}

	if err := writeScanOutput(findings, verifications); err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	for _, f := range findings {
		if f.Confidence.String() == "high" {
			return exitWith(ExitFound, "")
		}
	}
	return nil
}

func filterIgnoredFindings(env *vetEnvironment, path string, findings []finding.Finding) []finding.Finding {
	out := findings[:0]
	for _, f := range findings {
		fp := baseline.CalculateFingerprint(f.PatternID, path, f.Secret.FullHash())
		if env.matcher.IsIgnored(fp) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func writeScanOutput(findings []finding.Finding, verifications map[string]verify.Result) error {
	switch scanFormat {
	case "json":
		return output.NewJSONFormatter(os.Stdout).FormatFindings(findings, verifications)
	case "sarif":
		return output.NewSARIFFormatter(os.Stdout, version).Format(findings, verifications)
	default:
		f := output.NewTextFormatter(os.Stdout)
		f.EnableColor = !scanNoColor
		return f.FormatFindings(findings, verifications)
	}
}
