package ast

import (
	"regexp"
	"strings"
)

// EnvMatch is a raw hit from the .env line detector: the trigger group
// whose pattern it matched, and the half-open byte range of the value
// (quotes stripped).
type EnvMatch struct {
	PatternID string
	Start     int
	End       int
}

var envLineRe = regexp.MustCompile(`(?m)^([A-Za-z_][A-Za-z0-9_.\-]*)[ \t]*=[ \t]*(['"]?)([^\n]*)$`)

// IsEnvFile reports whether name (a base file name) matches the .env /
// .env.* naming convention the line detector applies to.
func IsEnvFile(name string) bool {
	return name == ".env" || strings.HasPrefix(name, ".env.")
}

// ScanEnv applies the KEY=VALUE line grammar to content and tests each key
// against groups, returning one EnvMatch per surviving line.
func ScanEnv(content string, groups []TriggerGroup) []EnvMatch {
	var out []EnvMatch

	for _, lineStart := range lineStarts(content) {
		lineEnd := len(content)
		if idx := strings.IndexByte(content[lineStart:], '\n'); idx >= 0 {
			lineEnd = lineStart + idx
		}
		line := content[lineStart:lineEnd]

		m := envLineRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		key := line[m[2]:m[3]]
		quote := ""
		if m[4] >= 0 && m[4] < m[5] {
			quote = line[m[4]:m[5]]
		}
		rawStart, rawEnd := m[6], m[7]
		raw := line[rawStart:rawEnd]

		valStart, valEnd := rawStart, rawEnd
		if quote != "" {
			if strings.HasSuffix(raw, quote) && len(raw) >= len(quote) {
				valEnd = rawEnd - len(quote)
			}
		}
		value := line[valStart:valEnd]

		if strings.HasPrefix(value, "$") {
			continue
		}
		if len(value) < 8 || len(value) > 120 {
			continue
		}
		if strings.ContainsAny(value, " \t'\"#") {
			continue
		}

		group, ok := FirstMatch(groups, key)
		if !ok {
			continue
		}

		out = append(out, EnvMatch{
			PatternID: group.PatternID,
			Start:     lineStart + valStart,
			End:       lineStart + valEnd,
		})
	}

	return out
}

func lineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' && i+1 < len(content) {
			starts = append(starts, i+1)
		}
	}
	return starts
}
