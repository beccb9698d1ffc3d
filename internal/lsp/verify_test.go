package lsp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vet-dev/vet/internal/verify"
)

func TestVerifyCache_PeekMissReturnsNil(t *testing.T) {
	c := NewVerifyCache()
	assert.Nil(t, c.Peek("missing"))
}

func TestVerifyCache_CompleteThenPeekReturnsResult(t *testing.T) {
	c := NewVerifyCache()
	c.Complete("f1", verify.Result{Status: verify.StatusLive})

	res := c.Peek("f1")
	assert.NotNil(t, res)
	assert.Equal(t, verify.StatusLive, res.Status)
}

func TestVerifyCache_TryBegin_FirstCallSucceeds(t *testing.T) {
	c := NewVerifyCache()
	assert.True(t, c.TryBegin("f1"))
}

func TestVerifyCache_TryBegin_SecondCallBeforeCompleteFails(t *testing.T) {
	c := NewVerifyCache()
	c.TryBegin("f1")
	assert.False(t, c.TryBegin("f1"))
}

func TestVerifyCache_Complete_ClearsPendingAllowingRetry(t *testing.T) {
	c := NewVerifyCache()
	c.TryBegin("f1")
	c.Complete("f1", verify.Result{Status: verify.StatusLive})

	assert.True(t, c.TryBegin("f1"))
}

func TestVerifyCache_Fail_ClearsPendingAllowingRetry(t *testing.T) {
	c := NewVerifyCache()
	c.TryBegin("f1")
	c.Fail("f1")

	assert.True(t, c.TryBegin("f1"))
}

func TestVerifyCache_TryBegin_ExpiredPendingAllowsRetry(t *testing.T) {
	c := NewVerifyCache()
	c.mu.Lock()
	c.pending["f1"] = time.Now().Add(-2 * pendingExpiry)
	c.mu.Unlock()

	assert.True(t, c.TryBegin("f1"))
}

func TestVerifyCache_Peek_ExpiredResultIsTreatedAsAbsent(t *testing.T) {
	c := NewVerifyCache()
	c.Complete("f1", verify.Result{Status: verify.StatusLive})
	c.mu.Lock()
	entry, _ := c.cache.Peek("f1")
	entry.insertedAt = time.Now().Add(-2 * verifyTTL)
	c.cache.Add("f1", entry)
	c.mu.Unlock()

	assert.Nil(t, c.Peek("f1"))
}

func TestVerifyCache_Peek_FreshResultIsReturned(t *testing.T) {
	c := NewVerifyCache()
	c.Complete("f1", verify.Result{Status: verify.StatusLive})

	res := c.Peek("f1")
	require.NotNil(t, res)
	assert.Equal(t, verify.StatusLive, res.Status)
}
