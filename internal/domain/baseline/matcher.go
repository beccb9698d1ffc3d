package baseline

// IgnoreEntry is a single inline `[[ignore]]` entry from `.vet.toml`.
type IgnoreEntry struct {
	Fingerprint string
	PatternID   string
	File        string
	Reason      string
}

// IgnoreMatcher is a hash-set union of fingerprints drawn from a Baseline
// and a list of inline ignore entries, offering O(1) membership tests.
type IgnoreMatcher struct {
	fingerprints map[string]struct{}
}

// NewIgnoreMatcher unions fingerprints from an optional baseline and a list
// of config ignore entries, deduplicating.
func NewIgnoreMatcher(b *Baseline, ignores []IgnoreEntry) *IgnoreMatcher {
	m := &IgnoreMatcher{fingerprints: map[string]struct{}{}}
	if b != nil {
		for _, e := range b.Findings {
			m.fingerprints[e.Fingerprint] = struct{}{}
		}
	}
	for _, ig := range ignores {
		m.fingerprints[ig.Fingerprint] = struct{}{}
	}
	return m
}

// IsIgnored reports whether fp is present in the union set.
func (m *IgnoreMatcher) IsIgnored(fp string) bool {
	_, ok := m.fingerprints[fp]
	return ok
}

// Len returns the number of distinct fingerprints tracked.
func (m *IgnoreMatcher) Len() int {
	return len(m.fingerprints)
}
