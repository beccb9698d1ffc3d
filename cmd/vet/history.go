package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vet-dev/vet/internal/githistory"
	"github.com/vet-dev/vet/internal/output"
)

var (
	historyFormat      string
	historyConfigPath  string
	historySince       string
	historyUntil       string
	historyBranch      string
	historyAll         bool
	historyFirstParent bool
	historyLimit       int
)

var historyCmd = &cobra.Command{
	Use:   "history [repo-path]",
	Short: "Scan git history for secrets committed in the past",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "text", "output format: text, json, sarif")
	historyCmd.Flags().StringVarP(&historyConfigPath, "config", "c", "", "path to .vet.toml (default ./.vet.toml)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only commits after this revision or date")
	historyCmd.Flags().StringVar(&historyUntil, "until", "", "only commits up to this revision (default HEAD)")
	historyCmd.Flags().StringVar(&historyBranch, "branch", "", "branch to walk (default current HEAD)")
	historyCmd.Flags().BoolVar(&historyAll, "all", false, "keep every occurrence instead of only the earliest per secret")
	historyCmd.Flags().BoolVar(&historyFirstParent, "first-parent", true, "follow only first-parent commits on merges")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of commits to walk (0 = unlimited)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	repoPath := "."
	if len(args) == 1 {
		repoPath = args[0]
	}

	env, err := loadEnvironment(historyConfigPath, "")
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	opts := githistory.Options{
		Limit:        historyLimit,
		Since:        historySince,
		Until:        historyUntil,
		Branch:       historyBranch,
		FirstParent:  historyFirstParent,
		All:          historyAll,
		ExcludeGlobs: env.cfg.ExcludePaths,
		MaxFileSize:  env.cfg.MaxFileSize,
	}

	result, err := githistory.Scan(repoPath, env.scanner, opts)
	if err != nil {
		// Git errors (unresolved since/until/branch) are fatal for history,
		// per the error-handling contract.
		return exitWith(ExitRuntime, fmt.Sprintf("history: %s", err))
	}

	for _, w := range result.Warnings {
		slog.Warn(w)
	}

	if err := writeHistoryOutput(result.Entries); err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	if len(result.Entries) > 0 {
		return exitWith(ExitFound, "")
	}
	return nil
}

func writeHistoryOutput(entries []githistory.Entry) error {
	switch historyFormat {
	case "json":
		return output.NewJSONFormatter(os.Stdout).FormatHistory(entries)
	case "sarif":
		return output.NewHistorySARIFFormatter(os.Stdout, version).Format(entries)
	default:
		f := output.NewTextFormatter(os.Stdout)
		return f.FormatHistory(entries)
	}
}
