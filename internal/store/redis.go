package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"beautypulse-backend/internal/intent"
)

// NewRedisClient connects to Redis from a URL and verifies the connection.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// RedisStore keeps transcripts and pending state in Redis so sessions
// survive a server restart and can be shared across replicas.
type RedisStore struct {
	client      *redis.Client
	maxMessages int
	stateTTL    time.Duration
}

func NewRedisStore(client *redis.Client, maxMessages int, stateTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, maxMessages: maxMessages, stateTTL: stateTTL}
}

func historyKey(sessionID string) string { return "chat:history:" + sessionID }
func stateKey(sessionID string) string   { return "chat:state:" + sessionID }

func (r *RedisStore) Append(ctx context.Context, sessionID string, msg Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, historyKey(sessionID), b)
	if r.maxMessages > 0 {
		pipe.LTrim(ctx, historyKey(sessionID), int64(-r.maxMessages), -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (r *RedisStore) History(ctx context.Context, sessionID string) ([]Message, error) {
	raw, err := r.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("corrupt history entry: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, historyKey(sessionID), stateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *RedisStore) SetState(ctx context.Context, sessionID string, st *intent.ConversationState) error {
	if st == nil {
		return r.ClearState(ctx, sessionID)
	}
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, stateKey(sessionID), b, r.stateTTL).Err(); err != nil {
		return fmt.Errorf("failed to store state: %w", err)
	}
	return nil
}

func (r *RedisStore) State(ctx context.Context, sessionID string) (*intent.ConversationState, error) {
	raw, err := r.client.Get(ctx, stateKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	var st intent.ConversationState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("corrupt state entry: %w", err)
	}
	return &st, nil
}

func (r *RedisStore) ClearState(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, stateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}
