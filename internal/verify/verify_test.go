package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "live", StatusLive.String())
	assert.Equal(t, "inactive", StatusInactive.String())
	assert.Equal(t, "inconclusive", StatusInconclusive.String())
}

func TestRegistry_SupportsVerification(t *testing.T) {
	reg := NewRegistry(map[string]Verifier{
		"vcs/github-pat": func(ctx context.Context, secret string) (Result, error) {
			return Result{Status: StatusLive}, nil
		},
	})

	assert.True(t, reg.SupportsVerification("vcs/github-pat"))
	assert.False(t, reg.SupportsVerification("cloud/aws-access-key"))
}

func TestRegistry_Verify_UnsupportedPatternReturnsError(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.Verify(context.Background(), "cloud/aws-access-key", "secretvalue")
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindUnsupportedPattern, verr.Kind)
}

func TestRegistry_Verify_ReturnsVerifierResult(t *testing.T) {
	reg := NewRegistry(map[string]Verifier{
		"vcs/github-pat": func(ctx context.Context, secret string) (Result, error) {
			return Result{Status: StatusLive, Service: "GitHub"}, nil
		},
	})

	res, err := reg.Verify(context.Background(), "vcs/github-pat", "ghp_abc")
	require.NoError(t, err)
	assert.Equal(t, StatusLive, res.Status)
	assert.Equal(t, "GitHub", res.Service)
}

func TestRegistry_Verify_WrapsVerifierError(t *testing.T) {
	reg := NewRegistry(map[string]Verifier{
		"vcs/github-pat": func(ctx context.Context, secret string) (Result, error) {
			return Result{}, errors.New("network unreachable")
		},
	})

	_, err := reg.Verify(context.Background(), "vcs/github-pat", "ghp_abc")
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindHTTP, verr.Kind)
}

func TestRegistry_Verify_TimesOutOnSlowVerifier(t *testing.T) {
	reg := NewRegistry(map[string]Verifier{
		"vcs/github-pat": func(ctx context.Context, secret string) (Result, error) {
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			case <-time.After(10 * time.Second):
				return Result{Status: StatusLive}, nil
			}
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := reg.Verify(ctx, "vcs/github-pat", "ghp_abc")
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindTimeout, verr.Kind)
}

func TestError_UnwrapReturnsUnderlyingError(t *testing.T) {
	underlying := errors.New("boom")
	err := &Error{Kind: KindHTTP, Err: underlying}
	assert.Equal(t, underlying, errors.Unwrap(err))
}
