package flash

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adminboard/pkg/config"
	"github.com/adminboard/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Message 闪存消息
type Message struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Queue Redis闪存消息队列，按会话ID存取，读取即消费
type Queue struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	max    int64
}

// NewQueue 创建闪存消息队列
func NewQueue(client *redis.Client, cfg *config.FlashConfig) *Queue {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	max := int64(cfg.Max)
	if max <= 0 {
		max = 10
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "flashq:"
	}
	return &Queue{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		max:    max,
	}
}

func (q *Queue) key(sessionID string) string {
	return q.prefix + sessionID
}

// Add 追加一条消息，超出上限时丢弃最旧的
func (q *Queue) Add(ctx context.Context, sessionID, category, text string) error {
	data, err := json.Marshal(Message{Category: category, Message: text})
	if err != nil {
		return err
	}

	key := q.key(sessionID)
	pipe := q.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -q.max, -1)
	pipe.Expire(ctx, key, q.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		// 消息丢失不致命，记一条警告即可
		logger.Warn("flash add failed", zap.String("session", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// PopAll 取出并清空会话的全部消息
func (q *Queue) PopAll(ctx context.Context, sessionID string) ([]Message, error) {
	key := q.key(sessionID)

	pipe := q.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	raw, err := items.Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
