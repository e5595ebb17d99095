package flash

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminboard/pkg/config"
)

func newTestQueue(t *testing.T, max int) (*Queue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewQueue(client, &config.FlashConfig{TTLSeconds: 60, Prefix: "flashq:", Max: max}), mr
}

func TestAddAndPopAll(t *testing.T) {
	q, _ := newTestQueue(t, 10)
	ctx := context.Background()

	require.NoError(t, q.Add(ctx, "sess1", "success", "Menu created"))
	require.NoError(t, q.Add(ctx, "sess1", "error", "Delete refused"))

	msgs, err := q.PopAll(ctx, "sess1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, Message{Category: "success", Message: "Menu created"}, msgs[0])
	assert.Equal(t, Message{Category: "error", Message: "Delete refused"}, msgs[1])

	// 读取即消费，第二次为空
	msgs, err = q.PopAll(ctx, "sess1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSessionsIsolated(t *testing.T) {
	q, _ := newTestQueue(t, 10)
	ctx := context.Background()

	require.NoError(t, q.Add(ctx, "alice", "info", "for alice"))
	require.NoError(t, q.Add(ctx, "bob", "info", "for bob"))

	msgs, err := q.PopAll(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "for alice", msgs[0].Message)

	msgs, err = q.PopAll(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "for bob", msgs[0].Message)
}

func TestAddTrimsToMax(t *testing.T) {
	q, _ := newTestQueue(t, 3)
	ctx := context.Background()

	for _, text := range []string{"m1", "m2", "m3", "m4", "m5"} {
		require.NoError(t, q.Add(ctx, "sess1", "info", text))
	}

	msgs, err := q.PopAll(ctx, "sess1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	// 保留最新的，最旧的被挤掉
	assert.Equal(t, "m3", msgs[0].Message)
	assert.Equal(t, "m5", msgs[2].Message)
}

func TestAddSetsTTL(t *testing.T) {
	q, mr := newTestQueue(t, 10)
	ctx := context.Background()

	require.NoError(t, q.Add(ctx, "sess1", "info", "hello"))
	ttl := mr.TTL("flashq:sess1")
	assert.Greater(t, ttl.Seconds(), 0.0)
}

func TestPopAllSkipsBadJSON(t *testing.T) {
	q, mr := newTestQueue(t, 10)
	ctx := context.Background()

	require.NoError(t, q.Add(ctx, "sess1", "info", "good"))
	mr.Lpush("flashq:sess1", "{not json")

	msgs, err := q.PopAll(ctx, "sess1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "good", msgs[0].Message)
}
