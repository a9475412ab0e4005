package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/nutvale/admin-gateway/pkg/logger"
)

// RedisMirror shares warm collections between gateway replicas. Every miss
// falls back to upstream, so mirror failures are logged and swallowed.
type RedisMirror struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewRedisMirror(addr, password string, db int, ttl time.Duration, log logger.ZapLogger) (*RedisMirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisMirror{client: client, ttl: ttl, logger: log}, nil
}

func (m *RedisMirror) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := m.client.Get(ctx, m.prefixed(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			m.logger.Warn("redis mirror get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (m *RedisMirror) Set(ctx context.Context, key string, data []byte) {
	if err := m.client.Set(ctx, m.prefixed(key), data, m.ttl).Err(); err != nil {
		m.logger.Warn("redis mirror set failed", zap.String("key", key), zap.Error(err))
	}
}

func (m *RedisMirror) Del(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = m.prefixed(k)
	}
	if err := m.client.Del(ctx, prefixed...).Err(); err != nil {
		m.logger.Warn("redis mirror del failed", zap.Error(err))
	}
}

func (m *RedisMirror) Close() error { return m.client.Close() }

func (m *RedisMirror) prefixed(key string) string { return "admin:cache:" + key }
