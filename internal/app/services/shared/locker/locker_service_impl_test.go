package locker

import (
	"carepulse-service/internal/app/services/shared/redis"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService_TryLockAndUnlock(t *testing.T) {
	ctx := context.Background()
	service := NewLockService(redis.NewMemoryRepository(), zap.NewNop())

	acquired, owner, err := service.TryLock(ctx, "appointment:lock:1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.NotEmpty(t, owner)

	acquired, _, err = service.TryLock(ctx, "appointment:lock:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	assert.Error(t, service.Unlock(ctx, "appointment:lock:1", "someone-else"))
	require.NoError(t, service.Unlock(ctx, "appointment:lock:1", owner))

	acquired, _, err = service.TryLock(ctx, "appointment:lock:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLockService_UnlockMissingKey(t *testing.T) {
	service := NewLockService(redis.NewMemoryRepository(), zap.NewNop())
	assert.NoError(t, service.Unlock(context.Background(), "appointment:lock:missing", "owner"))
}
