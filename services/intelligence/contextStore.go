// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"caresync/models"

	"github.com/go-redis/redis/v8"
)

const aiContextPrefix = "ai:ctx:"

// maxContextTurns bounds the rolling conversation window sent to the model.
const maxContextTurns = 20

// ContextStore keeps per-user chat context between requests.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.ChatContext, error)
	Set(ctx context.Context, userID string, chatCtx *models.ChatContext) error
	Clear(ctx context.Context, userID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.ChatContext, error) {
	key := aiContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, chatCtx *models.ChatContext) error {
	if len(chatCtx.Turns) > maxContextTurns {
		chatCtx.Turns = chatCtx.Turns[len(chatCtx.Turns)-maxContextTurns:]
	}
	key := aiContextPrefix + userID
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := aiContextPrefix + userID
	return s.client.Del(ctx, key).Err()
}
