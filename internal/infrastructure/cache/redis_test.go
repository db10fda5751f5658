package cache

import (
	"context"
	"testing"
	"time"

	"skillmatrix/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_DisabledBypasses(t *testing.T) {
	ctx := context.Background()
	r := NewRedis(ctx, config.RedisConfig{Enabled: false}, nil)

	assert.False(t, r.Enabled())
	assert.Error(t, r.Ping(ctx))

	var out map[string]string
	hit, err := r.GetJSON(ctx, "people:detail:person-1", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute))
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.DeleteByPattern(ctx, "people:*"))
	assert.NoError(t, r.Close())
}

func TestRedis_NilReceiverBypasses(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.DeleteByPattern(context.Background(), "skills:*"))
}

func TestTTLOrDefault(t *testing.T) {
	assert.Equal(t, defaultTTL, ttlOrDefault(0))
	assert.Equal(t, defaultTTL, ttlOrDefault(-time.Second))
	assert.Equal(t, time.Minute, ttlOrDefault(time.Minute))
}
