package finding

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/vet-dev/vet/internal/domain/secret"
	"github.com/vet-dev/vet/internal/domain/values"
)

// Finding is a single detected secret at a location in a file.
type Finding struct {
	ID         string
	Path       string
	Span       Span
	PatternID  string
	Secret     secret.Secret
	Severity   values.Severity
	MaskedLine string
	Confidence values.Confidence
}

// NewID computes the FindingId for a (patternID, secret) pair: the first 6
// bytes of SHA-256(patternID || fingerprint-bytes-LE), hex-encoded to 12
// characters. Identical for the same secret content in two different files.
func NewID(patternID string, sec secret.Secret) string {
	return IDFromFingerprint(patternID, sec.Fingerprint())
}

// IDFromFingerprint computes the same FindingId as NewID directly from a
// 64-bit fingerprint, for callers (the git-history scanner) that never
// construct a secret.Secret.
func IDFromFingerprint(patternID string, fingerprint uint64) string {
	var fpBytes [8]byte
	binary.LittleEndian.PutUint64(fpBytes[:], fingerprint)

	h := sha256.New()
	h.Write([]byte(patternID))
	h.Write(fpBytes[:])
	sum := h.Sum(nil)

	return hex.EncodeToString(sum[:6])
}

// MaskedLine builds the masked_line for a finding: the full source line
// containing [matchStart, matchEnd) with that region replaced by masked.
// matchEnd is clamped to the line's end so a match that logically spans
// into a trailing newline (or a lone trailing CR) never panics and instead
// produces a masked line that may be shorter than the original — this is
// the specified, deliberate behaviour for that edge case.
func MaskedLine(content string, matchStart, matchEnd int, masked string) string {
	lineStart := strings.LastIndexByte(content[:matchStart], '\n') + 1
	lineEnd := len(content)
	if idx := strings.IndexByte(content[matchStart:], '\n'); idx >= 0 {
		lineEnd = matchStart + idx
	}
	if matchEnd > lineEnd {
		matchEnd = lineEnd
	}
	return content[lineStart:matchStart] + masked + content[matchEnd:lineEnd]
}
