package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Exit codes per the external-interfaces contract: 0 clean, 1 findings
// present, 2 runtime error.
const (
	ExitClean   = 0
	ExitFound   = 1
	ExitRuntime = 2
)

var (
	logLevel string
	quiet    bool
)

// version is the release string reported by `vet --version` and embedded
// as the SARIF tool driver version; overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "vet",
	Short: "Local-first secret scanner",
	Long: `vet finds, verifies, and remediates leaked secrets in a working tree
and its git history, without sending source content to any external
service.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if ce, ok := err.(*cliError); ok {
			if ce.message != "" {
				slog.Error(ce.message)
			}
			return ce.code
		}
		slog.Error(err.Error())
		return ExitRuntime
	}
	return ExitClean
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all log output")
}

func setupLogging() {
	level := parseLogLevel(logLevel)
	if quiet {
		level = slog.LevelError + 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// cliError carries an explicit exit code through cobra's error return path,
// so a command can signal ExitFound (findings present) without that being
// mistaken for ExitRuntime.
type cliError struct {
	code    int
	message string
}

func (e *cliError) Error() string { return e.message }

func exitWith(code int, message string) error {
	return &cliError{code: code, message: message}
}
