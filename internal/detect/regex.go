package detect

import "github.com/vet-dev/vet/internal/domain/pattern"

// RawMatch is an unverified regex hit: a pattern and the half-open byte
// range it matched. The scanner turns surviving RawMatches into Findings
// after the entropy gate and dedup passes.
type RawMatch struct {
	PatternID string
	Start     int
	End       int
}

// Regex runs p's compiled regex over content and returns one RawMatch per
// non-overlapping match whose line does not carry a vet:ignore marker.
func Regex(content string, p *pattern.Pattern) []RawMatch {
	locs := p.Regex().FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}

	out := make([]RawMatch, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if LineContainsIgnore(content, start) {
			continue
		}
		out = append(out, RawMatch{PatternID: p.ID(), Start: start, End: end})
	}
	return out
}
