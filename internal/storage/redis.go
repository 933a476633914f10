package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/vovakirdan/retro-arcade/internal/session"
)

const redisKeyPrefix = "arcade:best:"

// RedisStore keeps best scores in Redis so several arcade processes
// (for example one per SSH connection) share a single table.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

// OpenRedis connects to addr and verifies the connection with PING.
func OpenRedis(addr, password string, db int) (*RedisStore, error) {
	if addr == "" {
		return nil, errors.New("storage: redis address is empty")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot reach redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client, timeout: 2 * time.Second}, nil
}

func redisKey(gameID string) string {
	return redisKeyPrefix + gameID
}

// Get returns the stored best score, or 0 if the key is missing.
func (r *RedisStore) Get(gameID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	val, err := r.client.Get(ctx, redisKey(gameID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: redis get: %w", err)
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("storage: malformed best score %q: %w", val, err)
	}
	return score, nil
}

// Set overwrites the best score for the game.
func (r *RedisStore) Set(gameID string, score int) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, redisKey(gameID), score, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis set: %w", err)
	}
	return nil
}

// Close releases the client connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ session.ScoreStore = (*RedisStore)(nil)
