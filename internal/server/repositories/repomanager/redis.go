package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/greencareers/internal/server/repositories/identities"
	"github.com/redis/go-redis/v9"
)

// RedisRepositoryManager vends a Redis-backed identity repository.
type RedisRepositoryManager struct {
	identities *identities.RedisRepository
}

func NewRedisRepositoryManager(ctx context.Context, addr string) (*RedisRepositoryManager, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}
	return &RedisRepositoryManager{identities: identities.NewRedisRepository(client)}, nil
}

func (m *RedisRepositoryManager) Identities() identities.Repository { return m.identities }

func (m *RedisRepositoryManager) Close() error { return m.identities.Close() }
