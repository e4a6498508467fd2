package completion

import (
	"context"
	"errors"
	"testing"
	"time"

	"interviewcoach/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsProvider(t *testing.T) {
	c, err := New(config.Completion{Provider: config.ProviderOpenAI})
	require.NoError(t, err)
	assert.IsType(t, &openAIClient{}, c)

	c, err = New(config.Completion{})
	require.NoError(t, err)
	assert.IsType(t, &openAIClient{}, c)

	c, err = New(config.Completion{Provider: config.ProviderGemini})
	require.NoError(t, err)
	assert.IsType(t, &geminiClient{}, c)

	_, err = New(config.Completion{Provider: "llama"})
	assert.EqualError(t, err, `unsupported completion provider: "llama"`)
}

func TestBackendError_PreservesDescription(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := backendError(config.ProviderOpenAI, cause)

	assert.Equal(t, "dial tcp: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	again := backendError(config.ProviderGemini, err)
	assert.Same(t, err, again)
}

func TestClientFunc(t *testing.T) {
	var seen Request
	c := ClientFunc(func(ctx context.Context, req Request) (string, error) {
		seen = req
		return "ok", nil
	})
	out, err := c.Complete(context.Background(), Request{System: "s", User: "u"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "u", seen.User)
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := withTimeout(context.Background(), 0)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok, "zero timeout should not set a deadline")

	ctx, cancel = withTimeout(context.Background(), time.Minute)
	defer cancel()
	_, ok = ctx.Deadline()
	assert.True(t, ok)

	parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
	defer parentCancel()
	want, _ := parent.Deadline()
	ctx, cancel = withTimeout(parent, time.Hour)
	defer cancel()
	got, _ := ctx.Deadline()
	assert.Equal(t, want, got, "existing deadline should be kept")
}
