package main

import (
	"github.com/spf13/cobra"

	"github.com/vet-dev/vet/internal/lsp"
)

var lspConfigPath string

var lspCmd = &cobra.Command{
	Use:   "lsp [workspace-roots...]",
	Short: "Run the language server over stdio",
	Args:  cobra.ArbitraryArgs,
	RunE:  runLSP,
}

func init() {
	lspCmd.Flags().StringVarP(&lspConfigPath, "config", "c", "", "path to .vet.toml (default ./.vet.toml)")
	rootCmd.AddCommand(lspCmd)
}

func runLSP(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	env, err := loadEnvironment(lspConfigPath, "")
	if err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	configPath := absConfigPath(roots[0], lspConfigPath)
	srv := lsp.NewServer(version, env.scanner, env.registry, env.verifier, env.cfg, env.matcher, env.walker, roots, configPath)
	if err := srv.Run(); err != nil {
		return exitWith(ExitRuntime, err.Error())
	}
	return nil
}
