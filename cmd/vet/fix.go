package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vet-dev/vet/internal/remediation"
	"github.com/vet-dev/vet/internal/walker"
)

var (
	fixConfigPath string
	fixAction     string
	fixEnv        string
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Rewrite findings in place: redact, placeholder, delete-line, or ignore-comment",
	Args:  cobra.ArbitraryArgs,
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().StringVarP(&fixConfigPath, "config", "c", "", "path to .vet.toml (default ./.vet.toml)")
	fixCmd.Flags().StringVar(&fixAction, "action", "redact", "remediation action: redact, placeholder, delete-line, ignore")
	fixCmd.Flags().StringVar(&fixEnv, "env", "", "placeholder variable name override (action=placeholder only)")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	action, err := parseFixAction(fixAction)
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	env, err := loadEnvironment(fixConfigPath, "")
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	files, err := env.walker.Walk(paths)
	if err != nil {
		return exitWith(ExitRuntime, fmt.Sprintf("walk: %s", err))
	}

	fixed := 0
	for _, path := range files {
		content, ok, err := walker.ReadFile(path, env.cfg.MaxFileSize)
		if err != nil || !ok {
			continue
		}

		findings := env.scanner.ScanContent(content, path)
		if len(findings) == 0 {
			continue
		}
		sort.Slice(findings, func(i, j int) bool {
			return findings[i].Span.ByteStart < findings[j].Span.ByteStart
		})

		rewritten := content
		delta := 0
		for _, f := range findings {
			out, d := remediation.Apply(rewritten, f, action, delta)
			rewritten = out
			delta += d
		}

		if rewritten == content {
			continue
		}
		if err := remediation.WriteAtomic(path, rewritten); err != nil {
			return exitWith(ExitRuntime, fmt.Sprintf("fix: write %s: %v", path, err))
		}
		fixed++
	}

	fmt.Printf("fixed %d file(s)\n", fixed)
	return nil
}

func parseFixAction(s string) (remediation.Action, error) {
	switch s {
	case "redact":
		return remediation.Action{Kind: remediation.Redact}, nil
	case "placeholder":
		return remediation.Action{Kind: remediation.Placeholder, Env: fixEnv}, nil
	case "delete-line":
		return remediation.Action{Kind: remediation.DeleteLine}, nil
	case "ignore":
		return remediation.Action{Kind: remediation.Ignore}, nil
	default:
		return remediation.Action{}, fmt.Errorf("fix: unknown action %q", s)
	}
}
