// Package githistory implements the C8 git history scanner: a parallel
// commit walk that diffs each commit against its first parent, scans
// changed blobs, and deduplicates findings across history.
package githistory

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	"golang.org/x/sync/errgroup"

	"github.com/vet-dev/vet/internal/domain/finding"
	"github.com/vet-dev/vet/internal/scanner"
)

// minChunkSize is the lower bound used when dividing the commit list across
// workers: max(len/numWorkers, minChunkSize).
const minChunkSize = 64

// CommitInfo is the shared, read-only metadata attached to every
// Occurrence discovered in one commit.
type CommitInfo struct {
	Hash    string
	Author  string
	Email   string
	Date    time.Time
	Subject string
}

// Occurrence is one finding discovered in one commit's diff.
type Occurrence struct {
	Path   string
	Span   finding.Span
	Line   string
	Commit *CommitInfo
}

// Entry aggregates every Occurrence sharing a (pattern id, secret
// fingerprint) key across the walked history.
type Entry struct {
	PatternID       string
	Fingerprint     uint64
	OccurrenceCount int
	IntroducedIn    Occurrence
	Occurrences     []Occurrence
}

// Options configures one history walk.
type Options struct {
	Limit        int
	Since        string
	Until        string
	Branch       string
	FirstParent  bool
	All          bool
	ExcludeGlobs []string
	MaxFileSize  int64
}

// Result is the outcome of one history walk.
type Result struct {
	Entries  []Entry
	Warnings []string
}

// Scan opens the repository at repoPath and walks its history per opts,
// running sc over every changed blob.
func Scan(repoPath string, sc *scanner.Scanner, opts Options) (Result, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return Result{}, fmt.Errorf("githistory: open repo: %w", err)
	}

	var warnings []string
	if isShallow(repo) {
		warnings = append(warnings, "repository is a shallow clone; history results may be incomplete")
	}

	start, err := resolveStart(repo, opts)
	if err != nil {
		return Result{}, err
	}

	sentinel, err := resolveSentinel(repo, opts)
	if err != nil {
		return Result{}, err
	}

	commits, err := walkCommits(repo, start, sentinel, opts)
	if err != nil {
		return Result{}, err
	}

	raw, err := scanChunksParallel(repoPath, sc, commits, opts)
	if err != nil {
		return Result{}, err
	}

	entries := dedupe(raw, opts.All)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].IntroducedIn.Commit.Date.Before(entries[j].IntroducedIn.Commit.Date)
	})

	return Result{Entries: entries, Warnings: warnings}, nil
}

// resolveStart picks the set of starting commit hashes for the walk.
func resolveStart(repo *git.Repository, opts Options) ([]plumbing.Hash, error) {
	if opts.Until != "" && opts.Until != "HEAD" {
		h, err := resolveRevision(repo, opts.Until)
		if err != nil {
			return nil, err
		}
		return []plumbing.Hash{h}, nil
	}
	if opts.Branch != "" {
		ref, err := repo.Reference(plumbing.NewBranchReferenceName(opts.Branch), true)
		if err != nil {
			return nil, fmt.Errorf("githistory: resolve branch %s: %w", opts.Branch, err)
		}
		return []plumbing.Hash{ref.Hash()}, nil
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, err
	}
	var heads []plumbing.Hash
	_ = branches.ForEach(func(ref *plumbing.Reference) error {
		heads = append(heads, ref.Hash())
		return nil
	})
	if len(heads) > 0 {
		return heads, nil
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("githistory: resolve HEAD: %w", err)
	}
	return []plumbing.Hash{head.Hash()}, nil
}

// resolveSentinel resolves opts.Since into a stop-sentinel commit id, or
// the zero hash if no Since was given.
func resolveSentinel(repo *git.Repository, opts Options) (plumbing.Hash, error) {
	if opts.Since == "" {
		return plumbing.ZeroHash, nil
	}
	if day, err := time.ParseInLocation("2006-01-02", opts.Since, time.Local); err == nil {
		endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(time.Second-1), time.Local)
		return findCommitBeforeOrAt(repo, endOfDay)
	}
	return resolveRevision(repo, opts.Since)
}

func resolveRevision(repo *git.Repository, rev string) (plumbing.Hash, error) {
	h, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("githistory: resolve %q: %w", rev, err)
	}
	return *h, nil
}

// findCommitBeforeOrAt returns the most recent commit (by committer time,
// descending from HEAD) whose committer time is <= cutoff.
func findCommitBeforeOrAt(repo *git.Repository, cutoff time.Time) (plumbing.Hash, error) {
	head, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return plumbing.ZeroHash, err
	}
	defer iter.Close()

	var found plumbing.Hash
	err = iter.ForEach(func(c *object.Commit) error {
		if !c.Committer.When.After(cutoff) {
			found = c.Hash
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return plumbing.ZeroHash, err
	}
	return found, nil
}

// walkCommits performs the ordered walk from start to sentinel, honoring
// FirstParent and Limit.
func walkCommits(repo *git.Repository, start []plumbing.Hash, sentinel plumbing.Hash, opts Options) ([]plumbing.Hash, error) {
	seen := map[plumbing.Hash]bool{}
	var out []plumbing.Hash

	for _, h := range start {
		if seen[h] {
			continue
		}
		iter, err := repo.Log(&git.LogOptions{From: h, Order: git.LogOrderCommitterTime})
		if err != nil {
			return nil, err
		}
		err = iter.ForEach(func(c *object.Commit) error {
			if c.Hash == sentinel {
				return storer.ErrStop
			}
			if seen[c.Hash] {
				if opts.FirstParent {
					return nil
				}
				return nil
			}
			seen[c.Hash] = true
			out = append(out, c.Hash)
			if opts.FirstParent && c.NumParents() == 0 {
				return storer.ErrStop
			}
			if opts.Limit > 0 && len(out) == opts.Limit {
				return storer.ErrStop
			}
			return nil
		})
		iter.Close()
		if err != nil && err != storer.ErrStop {
			return nil, err
		}
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

type rawOccurrence struct {
	patternID   string
	fingerprint uint64
	occ         Occurrence
}

// scanChunksParallel chunks commits into max(len/numWorkers, minChunkSize)
// groups and scans each chunk concurrently. Each worker opens its own
// repository handle, since go-git's object decoders are not meant to be
// driven concurrently from a single handle under heavy use.
func scanChunksParallel(repoPath string, sc *scanner.Scanner, commits []plumbing.Hash, opts Options) ([]rawOccurrence, error) {
	if len(commits) == 0 {
		return nil, nil
	}

	numWorkers := 8
	chunkSize := len(commits) / numWorkers
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}

	var chunks [][]plumbing.Hash
	for i := 0; i < len(commits); i += chunkSize {
		end := i + chunkSize
		if end > len(commits) {
			end = len(commits)
		}
		chunks = append(chunks, commits[i:end])
	}

	results := make([][]rawOccurrence, len(chunks))
	g := new(errgroup.Group)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			repo, err := git.PlainOpen(repoPath)
			if err != nil {
				return err
			}
			occs, err := scanChunk(repo, sc, chunk, opts)
			if err != nil {
				return err
			}
			results[i] = occs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []rawOccurrence
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func scanChunk(repo *git.Repository, sc *scanner.Scanner, chunk []plumbing.Hash, opts Options) ([]rawOccurrence, error) {
	var out []rawOccurrence

	for _, h := range chunk {
		commit, err := repo.CommitObject(h)
		if err != nil {
			continue
		}
		info := &CommitInfo{
			Hash:    commit.Hash.String(),
			Author:  commit.Author.Name,
			Email:   commit.Author.Email,
			Date:    commit.Committer.When,
			Subject: firstLine(commit.Message),
		}

		commitTree, err := commit.Tree()
		if err != nil {
			continue
		}

		var parentTree *object.Tree
		if commit.NumParents() > 0 {
			parent, err := commit.Parent(0)
			if err == nil {
				parentTree, _ = parent.Tree()
			}
		}

		var changes object.Changes
		if parentTree != nil {
			changes, err = parentTree.Diff(commitTree)
		} else {
			changes, err = object.DiffTree(nil, commitTree)
		}
		if err != nil {
			continue
		}

		for _, ch := range changes {
			action, err := ch.Action()
			if err != nil || action == merkletrie.Delete {
				continue
			}

			filePath := ch.To.Name
			if filePath == "" {
				filePath = ch.From.Name
			}
			if filePath == "" || excluded(filePath, opts.ExcludeGlobs) {
				continue
			}

			blob, ok := readBlob(commitTree, filePath, opts.MaxFileSize)
			if !ok {
				continue
			}

			findings := sc.ScanContent(blob, filePath)
			for _, f := range findings {
				out = append(out, rawOccurrence{
					patternID:   f.PatternID,
					fingerprint: f.Secret.Fingerprint(),
					occ: Occurrence{
						Path:   filePath,
						Span:   f.Span,
						Line:   lineAt(blob, f.Span.ByteStart),
						Commit: info,
					},
				})
			}
		}
	}

	return out, nil
}

func dedupe(raw []rawOccurrence, keepAll bool) []Entry {
	type key struct {
		pattern string
		fp      uint64
	}
	byKey := make(map[key]*Entry)
	var order []key

	for _, r := range raw {
		k := key{r.patternID, r.fingerprint}
		e, ok := byKey[k]
		if !ok {
			e = &Entry{
				PatternID:       r.patternID,
				Fingerprint:     r.fingerprint,
				OccurrenceCount: 1,
				IntroducedIn:    r.occ,
			}
			if keepAll {
				e.Occurrences = []Occurrence{r.occ}
			}
			byKey[k] = e
			order = append(order, k)
			continue
		}
		e.OccurrenceCount++
		if keepAll {
			e.Occurrences = append(e.Occurrences, r.occ)
		}
		if r.occ.Commit.Date.Before(e.IntroducedIn.Commit.Date) {
			e.IntroducedIn = r.occ
		}
	}

	out := make([]Entry, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

func readBlob(tree *object.Tree, filePath string, limit int64) (string, bool) {
	f, err := tree.File(filePath)
	if err != nil {
		return "", false
	}
	if limit > 0 && f.Size > limit {
		return "", false
	}
	reader, err := f.Reader()
	if err != nil {
		return "", false
	}
	defer reader.Close()

	buf := make([]byte, f.Size)
	if _, err := readFull(reader, buf); err != nil {
		return "", false
	}

	window := buf
	if len(window) > 8*1024 {
		window = window[:8*1024]
	}
	for _, b := range window {
		if b == 0 {
			return "", false
		}
	}
	return string(buf), true
}

func readFull(r io.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			if total == len(buf) {
				return total, nil
			}
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

func excluded(p string, globs []string) bool {
	base := path.Base(p)
	for _, g := range globs {
		if ok, _ := path.Match(g, p); ok {
			return true
		}
		if ok, _ := path.Match(g, base); ok {
			return true
		}
	}
	return false
}

func lineAt(content string, pos int) string {
	lineStart := strings.LastIndexByte(content[:pos], '\n') + 1
	lineEnd := len(content)
	if idx := strings.IndexByte(content[pos:], '\n'); idx >= 0 {
		lineEnd = pos + idx
	}
	return content[lineStart:lineEnd]
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func isShallow(repo *git.Repository) bool {
	ss, ok := repo.Storer.(storer.ShallowStorer)
	if !ok {
		return false
	}
	hashes, err := ss.Shallow()
	return err == nil && len(hashes) > 0
}
