// Package ast implements the trigger-word, segment-boundary name matching
// shared by the tree-sitter AST detector and the .env line detector, plus
// the tree-sitter detector itself.
package ast

import "strings"

// TriggerGroup binds a pattern id to the set of keyword strings (from the
// pattern's Keywords) that count as a match against an assignment target's
// name.
type TriggerGroup struct {
	PatternID string
	Words     []string
}

// NewTriggerGroup builds a TriggerGroup for a pattern id from its keywords.
func NewTriggerGroup(patternID string, words []string) TriggerGroup {
	return TriggerGroup{PatternID: patternID, Words: words}
}

// Match reports whether any of the group's words occur in name as a
// segment-bounded match, case-insensitively.
func (g TriggerGroup) Match(name string) bool {
	for _, w := range g.Words {
		if w == "" {
			continue
		}
		if containsAsSegment(name, w) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first group (in order) whose trigger matches name,
// and whether any group matched.
func FirstMatch(groups []TriggerGroup, name string) (TriggerGroup, bool) {
	for _, g := range groups {
		if g.Match(name) {
			return g, true
		}
	}
	return TriggerGroup{}, false
}

// containsAsSegment reports whether w occurs in n at a position bounded on
// both sides by a delimiter (_, ., -), a case boundary, or the start/end of
// n, matched case-insensitively.
func containsAsSegment(n, w string) bool {
	lowerN := strings.ToLower(n)
	lowerW := strings.ToLower(w)
	if lowerW == "" {
		return false
	}

	start := 0
	for {
		idx := strings.Index(lowerN[start:], lowerW)
		if idx < 0 {
			return false
		}
		pos := start + idx
		end := pos + len(lowerW)
		if boundaryBefore(n, pos) && boundaryAfter(n, end) {
			return true
		}
		start = pos + 1
		if start >= len(lowerN) {
			return false
		}
	}
}

func boundaryBefore(n string, pos int) bool {
	if pos == 0 {
		return true
	}
	if isDelimiter(n[pos-1]) {
		return true
	}
	return isCaseBoundary(n, pos)
}

func boundaryAfter(n string, pos int) bool {
	if pos == len(n) {
		return true
	}
	if isDelimiter(n[pos]) {
		return true
	}
	return isCaseBoundary(n, pos)
}

func isDelimiter(b byte) bool {
	return b == '_' || b == '.' || b == '-'
}

// isCaseBoundary reports whether a case boundary exists at position i in n:
// either a lower-to-upper transition immediately before i, or i sits inside
// an uppercase run at the position just before it drops to lowercase
// (bytes[i-1] upper, bytes[i] upper, bytes[i+1] lower).
func isCaseBoundary(n string, i int) bool {
	if i <= 0 || i >= len(n) {
		return false
	}
	prev, cur := n[i-1], n[i]
	if isLower(prev) && isUpper(cur) {
		return true
	}
	if i+1 < len(n) && isUpper(prev) && isUpper(cur) && isLower(n[i+1]) {
		return true
	}
	return false
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
