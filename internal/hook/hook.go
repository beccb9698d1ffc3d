// Package hook implements the scan a git pre-commit hook script would
// invoke: only the files currently staged for commit.
package hook

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/vet-dev/vet/internal/scanner"
	"github.com/vet-dev/vet/internal/walker"
)

// Exit codes mirror `vet scan`'s contract.
const (
	ExitClean   = 0
	ExitFound   = 1
	ExitRuntime = 2
)

// RunStaged scans every file staged for commit in the repository at
// repoRoot, returning the same exit-code contract as `vet scan`: 0 when
// clean, 1 when at least one finding survives, 2 on a runtime error.
func RunStaged(ctx context.Context, repoRoot string, sc *scanner.Scanner, maxFileSize int64) (int, error) {
	repo, err := git.PlainOpen(repoRoot)
	if err != nil {
		return ExitRuntime, fmt.Errorf("hook: open repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return ExitRuntime, fmt.Errorf("hook: worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return ExitRuntime, fmt.Errorf("hook: status: %w", err)
	}

	found := false
	for path, fs := range status {
		if !isStaged(fs.Staging) {
			continue
		}

		abs := filepath.Join(repoRoot, path)
		content, ok, err := walker.ReadFile(abs, maxFileSize)
		if err != nil || !ok {
			// A staged-then-deleted file, a binary, or an over-limit file has
			// nothing scannable; skip it.
			continue
		}

		if findings := sc.ScanContent(content, path); len(findings) > 0 {
			found = true
		}
	}

	if found {
		return ExitFound, nil
	}
	return ExitClean, nil
}

func isStaged(code git.StatusCode) bool {
	switch code {
	case git.Added, git.Modified, git.Renamed, git.Copied:
		return true
	default:
		return false
	}
}
