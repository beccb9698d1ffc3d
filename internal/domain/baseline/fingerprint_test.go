package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFingerprint_Deterministic(t *testing.T) {
	a := CalculateFingerprint("cloud/aws-access-key", "src/config.go", "sha256:abc")
	b := CalculateFingerprint("cloud/aws-access-key", "src/config.go", "sha256:abc")
	assert.Equal(t, a, b)
}

func TestCalculateFingerprint_StableAcrossPathSeparators(t *testing.T) {
	unix := CalculateFingerprint("cloud/aws-access-key", "src/config.go", "sha256:abc")
	windows := CalculateFingerprint("cloud/aws-access-key", `src\config.go`, "sha256:abc")
	assert.Equal(t, unix, windows)
}

func TestCalculateFingerprint_StableAcrossLeadingDotSlash(t *testing.T) {
	plain := CalculateFingerprint("cloud/aws-access-key", "src/config.go", "sha256:abc")
	prefixed := CalculateFingerprint("cloud/aws-access-key", "./src/config.go", "sha256:abc")
	assert.Equal(t, plain, prefixed)
}

func TestCalculateFingerprint_DifferentSecretDifferentFingerprint(t *testing.T) {
	a := CalculateFingerprint("cloud/aws-access-key", "src/config.go", "sha256:abc")
	b := CalculateFingerprint("cloud/aws-access-key", "src/config.go", "sha256:def")
	assert.NotEqual(t, a, b)
}

func TestCalculateFingerprint_HasSha256Prefix(t *testing.T) {
	fp := CalculateFingerprint("cloud/aws-access-key", "src/config.go", "sha256:abc")
	assert.Regexp(t, `^sha256:[0-9a-f]{64}$`, fp)
}
