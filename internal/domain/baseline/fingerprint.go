package baseline

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// CalculateFingerprint computes the content-addressed baseline identifier
// `sha256:` + hex(SHA-256(patternID ":" normalisedPath ":" secretFullHash)).
// It is stable across line-number and whitespace changes and changes only
// when the file is renamed.
func CalculateFingerprint(patternID, path, secretFullHash string) string {
	normalized := normalizePath(path)
	input := patternID + ":" + normalized + ":" + secretFullHash

	sum := sha256.Sum256([]byte(input))
	return "sha256:" + hex.EncodeToString(sum[:])
}

// normalizePath converts backslashes to forward slashes and strips a single
// leading "./", matching the git-normalised form used elsewhere in the
// scanner so fingerprints are stable across platforms.
func normalizePath(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	return strings.TrimPrefix(p, "./")
}
