package pattern

import (
	"strings"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// Registry owns an ordered sequence of Patterns plus the derived indexes
// used to cheaply decide, for a given blob of content, which patterns are
// worth running a full regex or AST pass for.
//
// Only default_enabled patterns ever enter the indexes: a Registry built
// from a mix of enabled and disabled patterns silently drops the disabled
// ones from every lookup.
type Registry struct {
	patterns []*Pattern

	trie *ahocorasick.Trie
	// bucketOf maps a lowercased keyword to its index into keywordPatterns.
	bucketOf map[string]int
	// keywordPatterns[i] holds the indexes (into patterns) of every pattern
	// that registered the i-th deduplicated keyword string.
	keywordPatterns [][]int
	// keywordless holds the indexes of patterns with no keywords at all;
	// these must run unconditionally on every scan.
	keywordless []int
}

// NewRegistry builds a Registry from the given patterns. Patterns with
// DefaultEnabled() == false are recorded (so callers can still look them up
// by id for `--enable-pattern`-style overrides) but never indexed.
func NewRegistry(patterns []*Pattern) *Registry {
	r := &Registry{
		patterns: patterns,
		bucketOf: map[string]int{},
	}

	var keywords []string

	for i, p := range patterns {
		if !p.DefaultEnabled() {
			continue
		}
		if len(p.Keywords()) == 0 {
			r.keywordless = append(r.keywordless, i)
			continue
		}
		for _, kw := range p.Keywords() {
			lower := strings.ToLower(kw)
			idx, ok := r.bucketOf[lower]
			if !ok {
				idx = len(keywords)
				keywords = append(keywords, lower)
				r.bucketOf[lower] = idx
				r.keywordPatterns = append(r.keywordPatterns, nil)
			}
			r.keywordPatterns[idx] = append(r.keywordPatterns[idx], i)
		}
	}

	if len(keywords) > 0 {
		r.trie = ahocorasick.NewTrieBuilder().AddStrings(keywords).Build()
	}
	return r
}

// Patterns returns every pattern the registry was built from, including
// disabled ones, in declaration order.
func (r *Registry) Patterns() []*Pattern {
	return r.patterns
}

// ByID looks up a pattern (enabled or not) by its id.
func (r *Registry) ByID(id string) (*Pattern, bool) {
	for _, p := range r.patterns {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// CandidatesFor returns a per-pattern-index "must run" bitset for content.
// The slice has the same length as the patterns this registry was built
// from; disabled patterns are always false.
//
// Matching is ASCII-case-insensitive: both the keyword set and the content
// are lowercased before the automaton runs.
func (r *Registry) CandidatesFor(content []byte) []bool {
	must := make([]bool, len(r.patterns))
	for _, idx := range r.keywordless {
		must[idx] = true
	}
	if r.trie == nil {
		return must
	}

	lowered := strings.ToLower(string(content))
	for _, m := range r.trie.MatchString(lowered) {
		bucket, ok := r.bucketOf[string(m.Word())]
		if !ok {
			continue
		}
		for _, pidx := range r.keywordPatterns[bucket] {
			must[pidx] = true
		}
	}
	return must
}
