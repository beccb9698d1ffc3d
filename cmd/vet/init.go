package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vet-dev/vet/internal/initdetect"
)

var initOutPath string

var initCmd = &cobra.Command{
	Use:   "init [root]",
	Short: "Write a starter .vet.toml tuned to the detected ecosystems",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

// ecosystemExcludes are the extra path exclusions a starter config adds per
// detected ecosystem, on top of the always-present defaults.
var ecosystemExcludes = map[string][]string{
	"node":   {"node_modules/**"},
	"python": {"**/__pycache__/**", ".venv/**"},
	"go":     {"vendor/**"},
	"rust":   {"target/**"},
	"ruby":   {"vendor/bundle/**"},
	"java":   {"target/**", "build/**"},
}

func init() {
	initCmd.Flags().StringVar(&initOutPath, "out", ".vet.toml", "output path for the generated config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	if _, err := os.Stat(initOutPath); err == nil {
		return exitWith(ExitRuntime, fmt.Sprintf("init: %s already exists", initOutPath))
	}

	ecosystems := initdetect.DetectEcosystems(root)

	excludes := []string{".git/**"}
	for _, eco := range ecosystems {
		excludes = append(excludes, ecosystemExcludes[eco]...)
	}

	content := renderStarterConfig(excludes)
	if err := os.WriteFile(initOutPath, []byte(content), 0o644); err != nil {
		return exitWith(ExitRuntime, err.Error())
	}

	if len(ecosystems) > 0 {
		fmt.Printf("wrote %s (detected ecosystems: %v)\n", initOutPath, ecosystems)
	} else {
		fmt.Printf("wrote %s (no known ecosystem detected)\n", initOutPath)
	}
	return nil
}

func renderStarterConfig(excludes []string) string {
	out := "minimum_confidence = \"high\"\nexclude_paths = [\n"
	for _, e := range excludes {
		out += fmt.Sprintf("  %q,\n", e)
	}
	out += "]\n"
	return out
}
