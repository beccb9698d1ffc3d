// Package walker implements the C7 file walker: binary-extension
// filtering, gitignore-aware directory traversal, and user-glob exclusion.
package walker

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	gitignore "github.com/sabhiram/go-gitignore"
)

// binaryExtensions is the case-insensitive denylist of extensions the
// walker always skips, regardless of gitignore state.
var binaryExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {}, ".webp": {},
	".mp3": {}, ".wav": {}, ".flac": {}, ".ogg": {},
	".mp4": {}, ".mov": {}, ".avi": {}, ".mkv": {}, ".webm": {},
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {},
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {},
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".a": {}, ".o": {}, ".bin": {},
	".pdf": {}, ".class": {}, ".jar": {}, ".wasm": {},
}

// IsBinaryExtension reports whether p's extension is on the denylist.
func IsBinaryExtension(p string) bool {
	_, denied := binaryExtensions[strings.ToLower(filepath.Ext(p))]
	return denied
}

// Walker discovers the set of paths a scan should read.
type Walker struct {
	excludeGlobs     []string
	respectGitignore bool
}

// New builds a Walker. excludeGlobs are matched against both the path
// relative to the walk root and the base file name; a match excludes the
// path regardless of gitignore.
func New(excludeGlobs []string, respectGitignore bool) *Walker {
	return &Walker{excludeGlobs: excludeGlobs, respectGitignore: respectGitignore}
}

// Walk resolves startPaths (files or directories) into the flat list of
// file paths the scanner should read. Distinct start paths are walked
// concurrently; traversal within one directory tree is sequential so
// nested .gitignore rules can be layered correctly as the walk descends.
func (w *Walker) Walk(startPaths []string) ([]string, error) {
	results := make([][]string, len(startPaths))

	g := new(errgroup.Group)
	for i, sp := range startPaths {
		i, sp := i, sp
		g.Go(func() error {
			paths, err := w.walkOne(sp)
			if err != nil {
				return err
			}
			results[i] = paths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (w *Walker) walkOne(start string) ([]string, error) {
	info, err := os.Stat(start)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if w.accept(start, start) {
			return []string{start}, nil
		}
		return nil, nil
	}

	var out []string
	var ignorers []*gitignore.GitIgnore

	err = filepath.WalkDir(start, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.respectGitignore {
				if gi, loadErr := gitignore.CompileIgnoreFile(filepath.Join(p, ".gitignore")); loadErr == nil {
					ignorers = append(ignorers, gi)
				}
			}
			if p != start && d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if w.respectGitignore && matchesAny(ignorers, p, start) {
			return nil
		}
		if w.accept(p, start) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func matchesAny(ignorers []*gitignore.GitIgnore, p, root string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		rel = p
	}
	for _, gi := range ignorers {
		if gi.MatchesPath(rel) {
			return true
		}
	}
	return false
}

// AcceptsPath reports whether a single file at path, located under
// workspaceRoot, would be included by a full Walk of workspaceRoot: it
// applies the same binary-extension and exclude-glob rules as accept, and,
// when respectGitignore is set, loads the chain of .gitignore files from
// workspaceRoot down to path's directory. Intended for the LSP's
// per-document scan pipeline, which scans one file at a time rather than
// walking a tree.
func (w *Walker) AcceptsPath(path, workspaceRoot string) bool {
	if !w.accept(path, workspaceRoot) {
		return false
	}
	if !w.respectGitignore {
		return true
	}

	dir := filepath.Dir(path)
	rel, err := filepath.Rel(workspaceRoot, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = "."
	}

	var ignorers []*gitignore.GitIgnore
	cur := workspaceRoot
	if gi, err := gitignore.CompileIgnoreFile(filepath.Join(cur, ".gitignore")); err == nil {
		ignorers = append(ignorers, gi)
	}
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if seg == "" || seg == "." {
			continue
		}
		cur = filepath.Join(cur, seg)
		if gi, err := gitignore.CompileIgnoreFile(filepath.Join(cur, ".gitignore")); err == nil {
			ignorers = append(ignorers, gi)
		}
	}

	return !matchesAny(ignorers, path, workspaceRoot)
}

func (w *Walker) accept(p, root string) bool {
	if IsBinaryExtension(p) {
		return false
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		rel = p
	}
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, glob := range w.excludeGlobs {
		if ok, _ := path.Match(glob, rel); ok {
			return false
		}
		if ok, _ := path.Match(glob, base); ok {
			return false
		}
	}
	return true
}
