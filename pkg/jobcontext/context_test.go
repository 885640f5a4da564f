package jobcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBeginMetadata(t *testing.T) {
	ctx, cancel := EventBegin(context.Background(), "meeting.uploaded", "evt_1")
	defer cancel()

	meta := GetMetadata(ctx)
	assert.Equal(t, "meeting.uploaded", meta.Topic)
	assert.Equal(t, "evt_1", meta.EventID)
	assert.Equal(t, 0, meta.RetryAttempt)
	assert.Equal(t, 3, meta.MaxRetries)
	assert.False(t, meta.StartTime.IsZero())

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.True(t, deadline.After(time.Now()))
}

func TestGetMetadataOnBareContext(t *testing.T) {
	meta := GetMetadata(context.Background())
	assert.Empty(t, meta.Topic)
	assert.Empty(t, meta.EventID)
	assert.Equal(t, 3, meta.MaxRetries)
}

func TestRunSucceeds(t *testing.T) {
	ctx, cancel := EventBegin(context.Background(), "topic", "evt_1")
	defer cancel()

	calls := 0
	err := Run(ctx, func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRunDoesNotRetryTerminalErrors(t *testing.T) {
	ctx, cancel := EventBegin(context.Background(), "topic", "evt_1")
	defer cancel()

	boom := errors.New("payload rejected")
	calls := 0
	err := Run(ctx, func(context.Context) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRunRecoversPanic(t *testing.T) {
	ctx, cancel := EventBegin(context.Background(), "topic", "evt_1")
	defer cancel()

	var err error
	require.NotPanics(t, func() {
		err = Run(ctx, func(context.Context) error {
			panic("handler exploded")
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered")
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
	assert.False(t, IsRetryableError(errors.New("payload rejected")))
	assert.True(t, IsRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, IsRetryableError(errors.New("429 too many requests")))
	assert.True(t, IsRetryableError(errors.New("context deadline exceeded")))
	assert.True(t, IsRetryableError(errors.New("upstream returned status 503 service unavailable")))
}

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, time.Second, CalculateBackoff(0, time.Second))
	assert.Equal(t, 2*time.Second, CalculateBackoff(1, time.Second))
	assert.Equal(t, 8*time.Second, CalculateBackoff(3, time.Second))
	// capped
	assert.Equal(t, 60*time.Second, CalculateBackoff(10, time.Second))
	// negative attempts clamp to the base delay
	assert.Equal(t, time.Second, CalculateBackoff(-2, time.Second))
}
