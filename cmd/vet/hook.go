package main

import (
	"github.com/spf13/cobra"

	"github.com/vet-dev/vet/internal/hook"
)

var hookConfigPath string

var hookCmd = &cobra.Command{
	Use:   "hook [repo-path]",
	Short: "Scan staged files as a git pre-commit hook would",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHook,
}

func init() {
	hookCmd.Flags().StringVarP(&hookConfigPath, "config", "c", "", "path to .vet.toml (default ./.vet.toml)")
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	repoRoot := "."
	if len(args) == 1 {
		repoRoot = args[0]
	}

	env, err := loadEnvironment(hookConfigPath, "")
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	code, err := hook.RunStaged(cmd.Context(), repoRoot, env.scanner, env.cfg.MaxFileSize)
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}
	if code == hook.ExitFound {
		return exitWith(ExitFound, "")
	}
	return nil
}
